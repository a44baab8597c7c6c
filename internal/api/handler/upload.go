package handler

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/allansduarte/placas-mundi-vendas/internal/usecases/dashboarding"
	"github.com/allansduarte/placas-mundi-vendas/internal/usecases/ingesting"
	"github.com/allansduarte/placas-mundi-vendas/pkg/apiErrors"
	"github.com/allansduarte/placas-mundi-vendas/pkg/log"
)

const (
	uploadFormField = "file"
	fileNameHeader  = "X-File-Name"
	fileNameQuery   = "filename"
)

var errMissingFile = errors.New("arquivo não enviado")

// UploadDashboard recebe a planilha (multipart no campo "file" ou corpo bruto) e cria a sessão do painel
func UploadDashboard(service dashboarding.DashboardService, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("INIT - UploadDashboard")

		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

		fileName, body, err := uploadedFile(r)
		if err != nil {
			logger.WithError(err).Warn("Upload sem arquivo válido")
			writeUploadError(w, err)
			return
		}
		defer body.Close()

		response, err := service.Upload(fileName, body)
		if err != nil {
			logger.WithError(err).Warn("Erro ao processar upload")
			writeUploadError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, response)
	}
}

// uploadedFile lê o multipart em fluxo; nenhuma parte é gravada em disco
func uploadedFile(r *http.Request) (string, io.ReadCloser, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		reader, err := r.MultipartReader()
		if err != nil {
			return "", nil, err
		}

		for {
			part, err := reader.NextPart()
			if errors.Is(err, io.EOF) {
				return "", nil, errMissingFile
			}
			if err != nil {
				return "", nil, err
			}

			if part.FormName() == uploadFormField {
				return part.FileName(), part, nil
			}
			part.Close()
		}
	}

	if r.ContentLength == 0 {
		return "", nil, errMissingFile
	}

	fileName := r.URL.Query().Get(fileNameQuery)
	if fileName == "" {
		fileName = r.Header.Get(fileNameHeader)
	}
	return fileName, r.Body, nil
}

func writeUploadError(w http.ResponseWriter, err error) {
	var schemaErr *ingesting.SchemaError
	var maxBytesErr *http.MaxBytesError

	switch {
	case errors.As(err, &schemaErr):
		apiErrors.WriteError(w, apiErrors.ErrInvalidSchema, schemaErr.Error(), map[string]any{"missing": schemaErr.Missing})
	case errors.As(err, &maxBytesErr):
		apiErrors.WriteError(w, apiErrors.ErrPayloadTooLarge, "Arquivo acima do limite permitido", map[string]any{"limit_bytes": maxBytesErr.Limit})
	case errors.Is(err, errMissingFile):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Envie o arquivo no campo 'file' ou no corpo da requisição", nil)
	case errors.Is(err, ingesting.ErrInvalidFile), errors.Is(err, http.ErrNotMultipart):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Não foi possível ler o arquivo enviado", err.Error())
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar arquivo", nil)
	}
}
