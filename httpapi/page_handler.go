package httpapi

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/korylprince/mians-chat/chatui"
)

//go:embed ui/index.html
var uiFS embed.FS

var pageTmpl = template.Must(template.ParseFS(uiFS, "ui/index.html"))

//pageData is rendered into the chat page
type pageData struct {
	Title        string
	Subtitle     string
	Endpoint     string
	EmptyHint    string
	ThinkingText string
	ErrorText    string
	MaxLength    int
}

//GET /
func handlePage(brand, endpoint string) returnHandler {
	return func(w http.ResponseWriter, r *http.Request) *handlerResponse {
		buf := new(bytes.Buffer)
		err := pageTmpl.Execute(buf, &pageData{
			Title:        chatui.Title(brand),
			Subtitle:     chatui.Subtitle(brand),
			Endpoint:     endpoint,
			EmptyHint:    chatui.EmptyHint,
			ThinkingText: chatui.ThinkingText,
			ErrorText:    chatui.ErrorText,
			MaxLength:    chatui.MaxInputLength,
		})
		if err != nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return &handlerResponse{Code: http.StatusInternalServerError, Err: err}
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := buf.WriteTo(w); err != nil {
			return &handlerResponse{Code: http.StatusOK, Err: err}
		}

		return &handlerResponse{Code: http.StatusOK}
	}
}
