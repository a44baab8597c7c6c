package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/allansduarte/placas-mundi-vendas/internal/usecases/dashboarding"
	"github.com/allansduarte/placas-mundi-vendas/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
)

func GetDashboard(service dashboarding.DashboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := service.GetSession(sessionID(r))
		if err != nil {
			writeSessionError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, session.Dashboard)
	}
}

// GetRecords retorna as vendas limpas da sessão na ordem original do arquivo
func GetRecords(service dashboarding.DashboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := service.GetSession(sessionID(r))
		if err != nil {
			writeSessionError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"file_name": session.FileName,
			"count":     len(session.Records),
			"records":   session.Records,
		})
	}
}

func GetAggregate(service dashboarding.DashboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())

		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve ser um inteiro não negativo", nil)
				return
			}
			limit = parsed
		}

		result, err := service.GetAggregate(params.ByName("id"), params.ByName("grouping"), limit)
		if err != nil {
			writeSessionError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func GetConsultants(service dashboarding.DashboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := service.GetSession(sessionID(r))
		if err != nil {
			writeSessionError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, session.Dashboard.Consultants)
	}
}

func DeleteSession(service dashboarding.DashboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.DeleteSession(sessionID(r)); err != nil {
			writeSessionError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func sessionID(r *http.Request) string {
	return httprouter.ParamsFromContext(r.Context()).ByName("id")
}

func writeSessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, dashboarding.ErrSessionNotFound):
		apiErrors.WriteError(w, apiErrors.ErrSessionNotFound, "Sessão não encontrada ou expirada", nil)
	case errors.Is(err, dashboarding.ErrUnknownGrouping):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Agrupamento inválido. Valores aceitos: regions, states, clients, consultants, months, models", nil)
	default:
		logrus.WithError(err).Error("Erro ao consultar sessão")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao consultar sessão", nil)
	}
}
