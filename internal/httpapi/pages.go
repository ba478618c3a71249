package httpapi

import "net/http"

// The server-rendered pages live in a separate frontend; these handlers only
// give the route gate concrete redirect targets.

const indexPage = `<!doctype html>
<html lang="pt-BR">
<head><meta charset="utf-8"><title>Adboard</title></head>
<body><h1>Adboard</h1><p>Painel de campanhas. Os dados são servidos em /api.</p></body>
</html>
`

const loginPage = `<!doctype html>
<html lang="pt-BR">
<head><meta charset="utf-8"><title>Adboard — Login</title></head>
<body><h1>Login</h1><p>Autentique-se via POST /api/auth/login.</p></body>
</html>
`

func (a *API) handleIndexPage(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	writeHTML(w, indexPage)
}

func (a *API) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	writeHTML(w, loginPage)
}

func writeHTML(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(body))
}
