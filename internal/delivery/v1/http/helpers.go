package http

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/DRSN-tech/catalog-backend/internal/usecase"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

const (
	defaultPageNumber = 0
	defaultPageSize   = 10
	defaultSortOrder  = "asc"
)

type ErrorResponse struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// ToHTTPResponse переводит ошибку уровня usecase в статус и сообщение ответа.
// Бизнес-ошибки несут человекочитаемый текст, поэтому сообщение берётся
// из самой ошибки; всё неопознанное сворачивается в 500.
func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrCategoryNotFound),
		errors.Is(err, e.ErrProductNotFound),
		errors.Is(err, e.ErrNoCategories),
		errors.Is(err, e.ErrNoProducts):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, e.ErrCategoryExists),
		errors.Is(err, e.ErrProductExists):
		return http.StatusConflict, err.Error()
	case errors.Is(err, e.ErrStatusBadRequest),
		errors.Is(err, e.ErrMissingFields),
		errors.Is(err, e.ErrExpectedMultipart),
		errors.Is(err, e.ErrNoImage),
		errors.Is(err, e.ErrFileTooLarge):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, e.ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType, err.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	var validationErr *e.ValidationError
	if errors.As(err, &validationErr) {
		resp := NewErrorResponse(http.StatusBadRequest, validationErr.Error())
		resp.Fields = validationErr.Fields
		writeJSON(w, http.StatusBadRequest, resp)
		return
	}

	code, msg := ToHTTPResponse(err)
	writeJSON(w, code, NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, status, data)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// parseID извлекает числовой идентификатор из URL-параметра chi.
func parseID(r *http.Request, param string) (int64, error) {
	raw := chi.URLParam(r, param)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, e.Wrap(param, e.ErrStatusBadRequest)
	}

	return id, nil
}

// parsePageReq читает параметры пагинации из query string,
// подставляя значения по умолчанию для отсутствующих.
func parsePageReq(r *http.Request, defaultSortBy string) (*usecase.PageReq, error) {
	query := r.URL.Query()

	pageNumber, err := parseInt32Query(query.Get("pageNumber"), defaultPageNumber)
	if err != nil || pageNumber < 0 {
		return nil, e.Wrap("pageNumber", e.ErrStatusBadRequest)
	}

	pageSize, err := parseInt32Query(query.Get("pageSize"), defaultPageSize)
	if err != nil || pageSize <= 0 {
		return nil, e.Wrap("pageSize", e.ErrStatusBadRequest)
	}

	sortBy := query.Get("sortBy")
	if sortBy == "" {
		sortBy = defaultSortBy
	}

	sortOrder := query.Get("sortOrder")
	if sortOrder == "" {
		sortOrder = defaultSortOrder
	}

	return &usecase.PageReq{
		PageNumber: pageNumber,
		PageSize:   pageSize,
		SortBy:     sortBy,
		SortOrder:  sortOrder,
	}, nil
}

func parseInt32Query(raw string, def int32) (int32, error) {
	if raw == "" {
		return def, nil
	}

	val, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, err
	}

	return int32(val), nil
}

// decodeJSON разбирает тело запроса в dst.
func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return e.Wrap(whereami.WhereAmI(), e.ErrStatusBadRequest)
	}

	return nil
}

func ensureMultipartForm(r *http.Request, maxMemory int64) error {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return e.Wrap(whereami.WhereAmI(), e.ErrExpectedMultipart)
	}
	return r.ParseMultipartForm(maxMemory)
}

// parseImage читает единственный файл поля "image" из multipart-формы.
func parseImage(files []*multipart.FileHeader) (*usecase.ProductImage, error) {
	const maxFileSize = 15 << 20

	if len(files) == 0 {
		return nil, e.ErrNoImage
	}

	fh := files[0]
	data, mimeType, err := readFile(fh, maxFileSize)
	if err != nil {
		return nil, err
	}

	return usecase.NewProductImage(data, mimeType, int64(len(data)), fh.Filename), nil
}

func readFile(fh *multipart.FileHeader, maxSize int64) ([]byte, string, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, "", e.ErrInternalServerError
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, "", e.ErrInternalServerError
	}
	if int64(len(data)) > maxSize {
		return nil, "", e.Wrap(fh.Filename, e.ErrFileTooLarge)
	}

	mimeType := http.DetectContentType(data[:min(len(data), 512)])
	return data, mimeType, nil
}
