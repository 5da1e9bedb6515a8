package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/m04kA/BookMe-Service/internal/api/middleware"
	"github.com/m04kA/BookMe-Service/internal/apperror"
)

const contentTypeJSON = "application/json"

// defaultContentType Content-Type запроса без заголовка
const defaultContentType = "application/octet-stream"

// ErrEmptyBody тело запроса отсутствует
var ErrEmptyBody = errors.New("handlers: request body is empty")

// RespondJSON отправляет JSON ответ
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// RespondError единственная точка отображения ошибок в HTTP ответ.
// Путь берется из описания запроса, сохраненного middleware.RequestDescription.
func RespondError(w http.ResponseWriter, r *http.Request, err error) {
	description := r.URL.Path
	if info, ok := middleware.RequestInfoFrom(r.Context()); ok {
		description = info.Description
		info.ErrorKind = apperror.KindOf(err).String()
	}

	status, body := apperror.Map(err, description)
	RespondJSON(w, status, body)
}

// RequireJSON проверяет Content-Type запроса
func RequireJSON(r *http.Request) error {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return apperror.UnsupportedMediaType(defaultContentType)
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || mediaType != contentTypeJSON {
		return apperror.UnsupportedMediaType(contentType)
	}
	return nil
}

// DecodeJSON декодирует JSON из тела запроса
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return ErrEmptyBody
	}

	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return ErrEmptyBody
	}
	return err
}
