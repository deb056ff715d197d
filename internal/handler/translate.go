package handler

import (
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	chmw "github.com/go-chi/chi/v5/middleware"

	"github.com/dangerclosesec/cpp2py/internal/domain"
	"github.com/dangerclosesec/cpp2py/internal/service"
)

//go:embed templates/index.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

type TranslateHandler struct {
	translateService *service.TranslateService
}

func NewTranslateHandler(translateService *service.TranslateService) *TranslateHandler {
	return &TranslateHandler{translateService: translateService}
}

// indexPage carries the form state round-tripped through the template.
type indexPage struct {
	CppCode    string
	PythonCode string
	Error      string
}

// IndexHandler serves the translation form and handles its submission.
// A GET renders the empty form; a POST translates the submitted cpp_code
// field and re-renders the page with the result or the diagnostic text.
func (h *TranslateHandler) IndexHandler(w http.ResponseWriter, r *http.Request) {
	page := indexPage{}

	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid form submission")
			return
		}
		page.CppCode = r.PostFormValue("cpp_code")

		output, err := h.translateService.Translate(r.Context(), service.TranslateInput{Source: page.CppCode})
		if err != nil {
			page.Error = err.Error()
		} else {
			page.PythonCode = output.Python
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, page); err != nil {
		slog.ErrorContext(r.Context(), "rendering index page",
			"error", err, "requestID", chmw.GetReqID(r.Context()))
	}
}

type TranslateResponse struct {
	BaseResponse
	*service.TranslateOutput
}

// APITranslateHandler handles POST /api/translate with a JSON body.
func (h *TranslateHandler) APITranslateHandler(w http.ResponseWriter, r *http.Request) {
	var input service.TranslateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	output, err := h.translateService.Translate(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			respondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrSourceTooLarge):
			respondWithError(w, http.StatusRequestEntityTooLarge, err.Error())
		case errors.Is(err, domain.ErrSyntax):
			respondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			slog.ErrorContext(r.Context(), "translation error",
				"error", err, "requestID", chmw.GetReqID(r.Context()))
			respondWithError(w, http.StatusInternalServerError, "Translation failed")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, TranslateResponse{
		BaseResponse:    BaseResponse{Ok: true},
		TranslateOutput: output,
	})
}
