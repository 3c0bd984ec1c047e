package server

import (
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/routeviz/pkg/buildinfo"
	"github.com/matzehuels/routeviz/pkg/observability"
	"github.com/matzehuels/routeviz/pkg/pipeline"
)

// Site is the immutable content served by the router.
type Site struct {
	// Source names the routing table the figures were rendered from.
	Source string
	// Views are listed on the index page in this order.
	Views []string
	// Artifacts are the rendered figures keyed by view and format.
	Artifacts map[pipeline.ArtifactKey][]byte
}

var contentTypes = map[string]string{
	pipeline.FormatSVG:   "image/svg+xml",
	pipeline.FormatPNG:   "image/png",
	pipeline.FormatPDF:   "application/pdf",
	pipeline.FormatText:  "text/plain; charset=utf-8",
	pipeline.FormatDOT:   "text/vnd.graphviz; charset=utf-8",
	pipeline.FormatGraph: "image/svg+xml",
}

// NewRouter returns the HTTP handler for site:
//
//	GET /                        index page embedding every view
//	GET /plots/{view}.{format}   one rendered artifact
//	GET /healthz                 liveness check
func NewRouter(site Site) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(observe)

	r.Get("/", site.index)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/plots/{view}.{format}", site.plot)

	return r
}

func (s Site) plot(w http.ResponseWriter, r *http.Request) {
	key := pipeline.ArtifactKey{
		View:   chi.URLParam(r, "view"),
		Format: chi.URLParam(r, "format"),
	}
	data, ok := s.Artifacts[key]
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", contentTypes[key.Format])
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write(data)
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>routeviz · {{.Source}}</title>
<style>
body { font-family: sans-serif; margin: 2em; color: #222; }
figure { margin: 0 0 2em 0; }
figcaption, footer { color: #666; margin-top: .5em; }
img { max-width: 100%; border: 1px solid #ddd; }
</style>
</head>
<body>
<h1>{{.Source}}</h1>
{{range .Figures}}{{$view := .View}}<figure>
<img src="/plots/{{.View}}.{{.Format}}" alt="{{.View}}">
<figcaption>{{.View}}{{range .Links}} · <a href="/plots/{{$view}}.{{.}}">{{.}}</a>{{end}}</figcaption>
</figure>
{{end}}<footer>routeviz {{.Version}}</footer>
</body>
</html>
`))

type indexFigure struct {
	View   string
	Format string
	Links  []string
}

func (s Site) index(w http.ResponseWriter, _ *http.Request) {
	var figures []indexFigure
	for _, view := range s.Views {
		f := indexFigure{View: view}
		for _, format := range pipeline.Formats {
			if _, ok := s.Artifacts[pipeline.ArtifactKey{View: view, Format: format}]; !ok {
				continue
			}
			if f.Format == "" && (format == pipeline.FormatSVG || format == pipeline.FormatPNG) {
				f.Format = format
			}
			f.Links = append(f.Links, format)
		}
		if f.Format != "" {
			figures = append(figures, f)
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := struct {
		Source  string
		Figures []indexFigure
		Version string
	}{s.Source, figures, buildinfo.Current().Version}
	if err := indexTemplate.Execute(w, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// observe reports every request to the registered server hooks.
func observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hooks := observability.Server()
		start := time.Now()
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		hooks.OnResponse(r.Context(), r.Method, r.URL.Path, status, ww.BytesWritten(), time.Since(start))
	})
}
