package handler

import (
	"net/http"
	"strconv"
	"time"
	"unsafe"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/store-finance-api/internal/domain"
	"github.com/vfg2006/store-finance-api/pkg/apiErrors"
	"github.com/vfg2006/store-finance-api/pkg/log"
	"github.com/vfg2006/store-finance-api/pkg/middleware"
	"github.com/vfg2006/store-finance-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func init() {
	// Datas chegam do front como "2006-01-02"; RFC3339 continua aceito
	jsoniter.RegisterTypeDecoderFunc("time.Time", func(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
		if iter.WhatIsNext() == jsoniter.NilValue {
			iter.Skip()
			return
		}

		raw := iter.ReadString()
		if raw == "" {
			*(*time.Time)(ptr) = time.Time{}
			return
		}
		for _, layout := range []string{time.RFC3339Nano, utils.DateLayout} {
			if t, err := time.Parse(layout, raw); err == nil {
				*(*time.Time)(ptr) = t
				return
			}
		}
		iter.ReportError("decode time.Time", "data inválida: "+raw)
	})
}

// principal retorna o usuário autenticado ou escreve o erro na resposta
func principal(w http.ResponseWriter, r *http.Request) (*domain.Principal, bool) {
	p, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return nil, false
	}
	return p, true
}

func param(r *http.Request, name string) string {
	return httprouter.ParamsFromContext(r.Context()).ByName(name)
}

// decodeBody decodifica o corpo JSON da requisição
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("Erro ao decodificar requisição")
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
		return false
	}
	return true
}

// writeServiceError traduz o erro de um caso de uso para a resposta da API
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var opErr *domain.OperationError
	if errors.As(err, &opErr) {
		var details any
		if opErr.EntityID != "" {
			details = map[string]string{"id": opErr.EntityID}
		}
		apiErrors.WriteError(w, opErr.Code, opErr.Error(), details)
		return
	}

	log.ForContext(r.Context()).WithError(err).Error(fallback)
	if domain.IsNotFound(err) {
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, fallback, nil)
		return
	}
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
}

func writeOK(w http.ResponseWriter, data any) {
	apiErrors.WriteResult(w, http.StatusOK, data)
}

func writeCreated(w http.ResponseWriter, data any) {
	apiErrors.WriteResult(w, http.StatusCreated, data)
}

// queryBool lê um parâmetro booleano opcional da query string
func queryBool(r *http.Request, name string) bool {
	v, err := strconv.ParseBool(r.URL.Query().Get(name))
	return err == nil && v
}

// queryInt lê um inteiro opcional; ausente retorna zero
func queryInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro "+name+" inválido", nil)
		return 0, false
	}
	return v, true
}

// dateRange lê start/end (YYYY-MM-DD) ou month (YYYY-MM) da query string.
// month tem precedência e cobre o mês inteiro.
func dateRange(w http.ResponseWriter, r *http.Request) (*time.Time, *time.Time, bool) {
	query := r.URL.Query()

	if month := query.Get("month"); month != "" {
		first, last, err := utils.MonthRange(month)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Mês inválido, use YYYY-MM", nil)
			return nil, nil, false
		}
		return &first, &last, true
	}

	var start, end *time.Time
	var err error
	if raw := query.Get("start"); raw != "" {
		if start, err = utils.ParseDate(raw); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inicial inválida, use YYYY-MM-DD", nil)
			return nil, nil, false
		}
	}
	if raw := query.Get("end"); raw != "" {
		if end, err = utils.ParseDate(raw); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data final inválida, use YYYY-MM-DD", nil)
			return nil, nil, false
		}
	}
	if start != nil && end != nil && end.Before(*start) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data final anterior à data inicial", nil)
		return nil, nil, false
	}
	return start, end, true
}

type activeRequest struct {
	Active *bool `json:"active"`
}

// decodeActive lê o corpo {"active": bool} usado pelas rotas de ativação
func decodeActive(w http.ResponseWriter, r *http.Request) (bool, bool) {
	var req activeRequest
	if !decodeBody(w, r, &req) {
		return false, false
	}
	if req.Active == nil {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo active é obrigatório", nil)
		return false, false
	}
	return *req.Active, true
}

type statusRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes,omitempty"`
}

func decodeStatus(w http.ResponseWriter, r *http.Request) (statusRequest, bool) {
	var req statusRequest
	if !decodeBody(w, r, &req) {
		return req, false
	}
	if req.Status == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Status é obrigatório", nil)
		return req, false
	}
	return req, true
}
