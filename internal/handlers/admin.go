package handlers

import (
	"bytes"
	"context"
	"html/template"
	"net/http"

	"vakilgpt-backend/internal/models"
)

type recordLister interface {
	ListAllQuestionsNewestFirst(ctx context.Context) ([]models.QuestionRecord, error)
}

type AdminHandler struct {
	repo recordLister
}

func NewAdminHandler(repo recordLister) *AdminHandler {
	return &AdminHandler{repo: repo}
}

// Field values are interpolated through html/template, so customer-supplied
// text cannot inject markup into the report.
var adminTemplate = template.Must(template.New("admin").Funcs(template.FuncMap{
	"truncate": func(s *string, n int) string {
		if s == nil {
			return ""
		}
		if len(*s) <= n {
			return *s
		}
		return (*s)[:n] + "..."
	},
}).Parse(`<html>
<head>
    <title>Admin Dashboard</title>
    <style>
        body { font-family: sans-serif; padding: 2rem; background: #f3f4f6; }
        table { width: 100%; border-collapse: collapse; background: white; box-shadow: 0 2px 5px rgba(0,0,0,0.1); }
        th, td { padding: 12px; border-bottom: 1px solid #ddd; text-align: left; }
        th { background: #1e3a8a; color: white; }
        tr:hover { background: #f9fafb; }
        h1 { color: #1e3a8a; }
    </style>
</head>
<body>
    <h1>📊 Vakil_GPT Live Records</h1>
    <table>
        <tr>
            <th>Time</th>
            <th>User (Email)</th>
            <th>Question</th>
            <th>AI Response</th>
        </tr>
        {{range .}}
        <tr>
            <td>{{.Timestamp.Format "2006-01-02 15:04:05"}}</td>
            <td>{{.CustomerEmail}}</td>
            <td>{{.Text}}</td>
            <td>{{if .AIResponse}}{{truncate .AIResponse 50}}{{else}}No Answer{{end}}</td>
        </tr>
        {{end}}
    </table>
</body>
</html>`))

func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	records, err := h.repo.ListAllQuestionsNewestFirst(r.Context())
	if err != nil {
		http.Error(w, "Error loading admin panel: "+err.Error(), http.StatusInternalServerError)
		return
	}

	// Render into a buffer first so a template failure can still produce a
	// clean 500 instead of a half-written page.
	var buf bytes.Buffer
	if err := adminTemplate.Execute(&buf, records); err != nil {
		http.Error(w, "Error loading admin panel: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}
