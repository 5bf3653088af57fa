package handlers

import (
	"net/http"
	"time"
)

const rootPage = `<!DOCTYPE html>
<html>
<head>
    <title>Student Directory API</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            margin: 0;
            background: #f1f3f4;
            display: flex;
            justify-content: center;
            align-items: center;
            min-height: 100vh;
        }
        .container {
            background: white;
            padding: 2rem 3rem;
            border-radius: 12px;
            box-shadow: 0 6px 20px rgba(0,0,0,0.15);
            max-width: 600px;
        }
        code {
            background: #f8f9fa;
            padding: 0 0.25rem;
        }
    </style>
</head>
<body>
    <div class="container">
        <h1>🎓 Student Directory API</h1>
        <ul>
            <li><code>GET /api/students</code> - List students</li>
            <li><code>GET /api/groups</code> - List groups</li>
            <li><code>POST /api/groups</code> - Create group</li>
            <li><code>GET /api/groups/{id}</code> - Get group with members</li>
            <li><code>DELETE /api/groups/{id}</code> - Delete group</li>
        </ul>
    </div>
</body>
</html>`

func RootHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(rootPage))
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"service":   "student-directory",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
