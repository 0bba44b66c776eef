package middleware

import (
	"encoding/json"
	"html/template"
	"net/http"
	"strings"

	"anima/config"
	"anima/internal/repository"

	"github.com/gin-gonic/gin"
)

// Social crawlers get a pre-rendered HTML shell with meta/OpenGraph tags
// instead of the JS application, which they cannot execute.
var crawlerSignatures = []string{
	"facebookexternalhit",
	"facebot",
	"twitterbot",
	"linkedinbot",
	"whatsapp",
	"telegrambot",
	"slackbot",
	"discordbot",
	"pinterestbot",
	"googlebot",
	"bingbot",
}

// IsSocialCrawler reports whether the user agent belongs to a known crawler.
func IsSocialCrawler(userAgent string) bool {
	ua := strings.ToLower(userAgent)
	for _, sig := range crawlerSignatures {
		if strings.Contains(ua, sig) {
			return true
		}
	}
	return false
}

var prerenderTmpl = template.Must(template.New("prerender").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<meta name="description" content="{{.Description}}">
<meta property="og:type" content="website">
<meta property="og:title" content="{{.Title}}">
<meta property="og:description" content="{{.Description}}">
<meta property="og:url" content="{{.URL}}">
{{if .Image}}<meta property="og:image" content="{{.Image}}">{{end}}
<meta name="twitter:card" content="summary_large_image">
</head>
<body>
<h1>{{.Title}}</h1>
<p>{{.Description}}</p>
</body>
</html>
`))

type pageMeta struct {
	Title       string
	Description string
	Image       string
	URL         string
}

// PrerenderForBots serves the meta shell to crawlers on public page routes.
// API and admin requests pass through untouched.
func PrerenderForBots(site *config.SiteConfig, configs *repository.ConfigRepository, articles *repository.ArticleRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet ||
			strings.HasPrefix(c.Request.URL.Path, "/api/") ||
			!IsSocialCrawler(c.Request.UserAgent()) {
			c.Next()
			return
		}
		meta := pageMeta{
			Title:       site.Title,
			Description: site.Description,
			URL:         site.BaseURL + c.Request.URL.Path,
		}
		if e, err := configs.Get("site_title"); err == nil && e != nil {
			if s := configString(e.Value); s != "" {
				meta.Title = s
			}
		}
		if e, err := configs.Get("site_description"); err == nil && e != nil {
			if s := configString(e.Value); s != "" {
				meta.Description = s
			}
		}
		if e, err := configs.Get("hero_image"); err == nil && e != nil {
			meta.Image = configString(e.Value)
		}
		if slug, ok := strings.CutPrefix(c.Request.URL.Path, "/articles/"); ok && slug != "" {
			if a, err := articles.GetBySlug(slug, true); err == nil {
				meta.Title = a.Title
				if a.Excerpt != "" {
					meta.Description = a.Excerpt
				}
				if a.CoverImageURL != "" {
					meta.Image = a.CoverImageURL
				}
			}
		}
		c.Status(http.StatusOK)
		c.Header("Content-Type", "text/html; charset=utf-8")
		_ = prerenderTmpl.Execute(c.Writer, meta)
		c.Abort()
	}
}

// configString extracts a usable string from a raw JSON config value:
// either a bare string, or the path/url field of an object.
func configString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err == nil {
		for _, k := range []string{"path", "url"} {
			if v, ok := obj[k]; ok {
				if err := json.Unmarshal(v, &s); err == nil {
					return s
				}
			}
		}
	}
	return ""
}
