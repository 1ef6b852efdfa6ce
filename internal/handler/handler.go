// Package handler exposes the returns service over JSON HTTP.
package handler

import (
	"context"
	"errors"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/valyala/fasthttp"

	"cgt-returns/internal/auth"
	"cgt-returns/internal/emailverify"
	"cgt-returns/internal/engine"
	"cgt-returns/internal/iv"
	"cgt-returns/internal/model"
	"cgt-returns/internal/store"
	"cgt-returns/internal/tasklist"
)

// Handler routes requests to the draft-return journey endpoints.
type Handler struct {
	store store.Store
	auth  auth.Resolver // nil disables authentication (local runs)
	email *emailverify.Client
}

func New(st store.Store, resolver auth.Resolver, email *emailverify.Client) *Handler {
	return &Handler{store: st, auth: resolver, email: email}
}

// Handle is the fasthttp entry point. Store and client calls get a separate
// context: a RequestCtx only behaves as a context.Context while fasthttp is
// serving its connection.
func (h *Handler) Handle(rctx *fasthttp.RequestCtx) {
	ctx := context.Background()
	path := string(rctx.Path())
	method := string(rctx.Method())

	if path == "/iv/failure" && method == fasthttp.MethodGet {
		h.ivFailure(rctx)
		return
	}

	if !h.authorized(rctx) {
		writeError(rctx, fasthttp.StatusUnauthorized, "Authentication required")
		return
	}

	segments := strings.Split(strings.Trim(path, "/"), "/")
	switch {
	case path == "/returns" && method == fasthttp.MethodPost:
		h.startReturn(ctx, rctx)
	case len(segments) == 3 && segments[0] == "returns" && segments[2] == "task-list" && method == fasthttp.MethodGet:
		h.taskList(ctx, rctx, segments[1])
	case len(segments) == 3 && segments[0] == "returns" && segments[2] == "updates" && method == fasthttp.MethodPost:
		h.update(ctx, rctx, segments[1])
	case len(segments) == 3 && segments[0] == "returns" && segments[2] == "email-verification" && method == fasthttp.MethodPost:
		h.requestEmailVerification(ctx, rctx, segments[1])
	case len(segments) == 4 && segments[0] == "returns" && segments[2] == "email-verification" && segments[3] == "callback" && method == fasthttp.MethodPost:
		h.emailCallback(ctx, rctx, segments[1])
	default:
		writeError(rctx, fasthttp.StatusNotFound, "Not found")
	}
}

func (h *Handler) authorized(rctx *fasthttp.RequestCtx) bool {
	if h.auth == nil {
		return true
	}
	token := strings.TrimPrefix(string(rctx.Request.Header.Peek("Authorization")), "Bearer ")
	_, ok := h.auth.Resolve(token)
	return ok
}

func (h *Handler) startReturn(ctx context.Context, rctx *fasthttp.RequestCtx) {
	var req model.StartReturnRequest
	if err := json.Unmarshal(rctx.PostBody(), &req); err != nil {
		writeError(rctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	draft := &model.DraftReturn{
		ReturnID:  uuid.New().String(),
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	props, _ := json.Marshal(map[string]any{"contact_details": req.Contact})
	resp := engine.Process(draft, &model.UpdateRequest{Name: "start_return", Properties: props})
	if resp.Metadata.Outcome == model.OutcomeFailure {
		writeJSON(rctx, fasthttp.StatusUnprocessableEntity, resp)
		return
	}

	if err := h.store.Create(ctx, draft); err != nil {
		log.Error().Err(err).Str("return_id", draft.ReturnID).Msg("creating draft return")
		writeError(rctx, fasthttp.StatusInternalServerError, "Something went wrong")
		return
	}

	log.Info().Str("return_id", draft.ReturnID).Msg("draft return started")
	writeJSON(rctx, fasthttp.StatusCreated, resp)
}

func (h *Handler) taskList(ctx context.Context, rctx *fasthttp.RequestCtx, key string) {
	draft, err := h.store.Fetch(ctx, key)
	if err != nil {
		writeStoreError(rctx, key, err)
		return
	}

	writeJSON(rctx, fasthttp.StatusOK, model.TaskListResponse{
		ReturnID: draft.ReturnID,
		Sections: tasklist.Compute(draft),
	})
}

func (h *Handler) update(ctx context.Context, rctx *fasthttp.RequestCtx, key string) {
	var req model.UpdateRequest
	if err := json.Unmarshal(rctx.PostBody(), &req); err != nil {
		writeError(rctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Name == "" {
		writeError(rctx, fasthttp.StatusBadRequest, "A mutation name is required")
		return
	}

	// Process runs inside the store transaction so the reported outcome is
	// the one that was persisted, even against a concurrent writer. On
	// FAILURE the snapshot passes through unchanged.
	var resp *model.UpdateResponse
	updated, err := h.store.Update(ctx, key, func(d model.DraftReturn) model.DraftReturn {
		resp = engine.Process(&d, &req)
		return d
	})
	if err != nil {
		writeStoreError(rctx, key, err)
		return
	}

	if resp.Metadata.Outcome == model.OutcomeFailure {
		writeJSON(rctx, fasthttp.StatusUnprocessableEntity, resp)
		return
	}
	resp.DraftReturn = updated

	writeJSON(rctx, fasthttp.StatusOK, resp)
}

func (h *Handler) requestEmailVerification(ctx context.Context, rctx *fasthttp.RequestCtx, key string) {
	var req model.EmailVerificationRequest
	if err := json.Unmarshal(rctx.PostBody(), &req); err != nil {
		writeError(rctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	draft, err := h.store.Fetch(ctx, key)
	if err != nil {
		writeStoreError(rctx, key, err)
		return
	}
	if draft.Contact == nil {
		writeError(rctx, fasthttp.StatusConflict, "The return has no contact details")
		return
	}
	email := req.Email
	if email == "" {
		email = draft.Contact.Email()
	}

	result, err := h.email.Request(ctx, email, draft.ReturnID, draft.Contact.Name())
	if err != nil {
		log.Error().Err(err).Str("return_id", key).Msg("requesting email verification")
		writeError(rctx, fasthttp.StatusBadGateway, "Something went wrong")
		return
	}

	if result == emailverify.AlreadyVerified {
		// The service already knows this address; record it as verified
		// without waiting for a callback.
		props, _ := json.Marshal(map[string]string{"email": email})
		verifyReq := &model.UpdateRequest{Name: "verify_email", Properties: props}

		var resp *model.UpdateResponse
		if _, err := h.store.Update(ctx, key, func(d model.DraftReturn) model.DraftReturn {
			resp = engine.Process(&d, verifyReq)
			if resp.Metadata.Outcome == model.OutcomeSuccess {
				d.EmailVerification = nil
			}
			return d
		}); err != nil {
			log.Error().Err(err).Str("return_id", key).Msg("recording verified email")
			writeError(rctx, fasthttp.StatusInternalServerError, "Something went wrong")
			return
		}
		if resp.Metadata.Outcome == model.OutcomeFailure {
			writeJSON(rctx, fasthttp.StatusUnprocessableEntity, resp)
			return
		}
		writeJSON(rctx, fasthttp.StatusOK, model.EmailVerificationResponse{Result: string(result)})
		return
	}

	token := uuid.New().String()
	if _, err := h.store.Update(ctx, key, func(d model.DraftReturn) model.DraftReturn {
		d.EmailVerification = &model.PendingEmailVerification{Token: token, Email: email}
		return d
	}); err != nil {
		log.Error().Err(err).Str("return_id", key).Msg("storing verification token")
		writeError(rctx, fasthttp.StatusInternalServerError, "Something went wrong")
		return
	}

	log.Info().Str("return_id", key).Msg("verification email requested")
	writeJSON(rctx, fasthttp.StatusAccepted, model.EmailVerificationResponse{Result: string(result)})
}

func (h *Handler) emailCallback(ctx context.Context, rctx *fasthttp.RequestCtx, key string) {
	var req model.EmailCallbackRequest
	if err := json.Unmarshal(rctx.PostBody(), &req); err != nil {
		writeError(rctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	draft, err := h.store.Fetch(ctx, key)
	if err != nil {
		writeStoreError(rctx, key, err)
		return
	}

	pending := draft.EmailVerification
	if pending == nil || !emailverify.TokenMatches(pending.Token, req.Token) {
		// Token mismatch is a request-level error, never a state mutation.
		log.Warn().Str("return_id", key).Msg("verification token mismatch")
		writeError(rctx, fasthttp.StatusForbidden, "Something went wrong")
		return
	}

	props, _ := json.Marshal(map[string]string{"email": pending.Email})
	verifyReq := &model.UpdateRequest{Name: "verify_email", Properties: props}

	var resp *model.UpdateResponse
	updated, err := h.store.Update(ctx, key, func(d model.DraftReturn) model.DraftReturn {
		resp = engine.Process(&d, verifyReq)
		if resp.Metadata.Outcome == model.OutcomeSuccess {
			d.EmailVerification = nil
		}
		return d
	})
	if err != nil {
		log.Error().Err(err).Str("return_id", key).Msg("persisting email verification")
		writeError(rctx, fasthttp.StatusInternalServerError, "Something went wrong")
		return
	}

	if resp.Metadata.Outcome == model.OutcomeFailure {
		writeJSON(rctx, fasthttp.StatusUnprocessableEntity, resp)
		return
	}
	resp.DraftReturn = updated

	log.Info().Str("return_id", key).Msg("email verified")
	writeJSON(rctx, fasthttp.StatusOK, resp)
}

func (h *Handler) ivFailure(rctx *fasthttp.RequestCtx) {
	raw := string(rctx.QueryArgs().Peek("reason"))
	reason := iv.ParseFailureReason(raw)
	if reason == iv.ReasonTechnicalIssue && raw != "TechnicalIssue" {
		log.Warn().Str("reason", raw).Msg("unrecognized IV failure reason")
	}

	writeJSON(rctx, fasthttp.StatusOK, model.IVFailureResponse{
		Reason:   string(reason),
		Redirect: iv.RouteFor(reason),
	})
}

func writeStoreError(rctx *fasthttp.RequestCtx, key string, err error) {
	if errors.Is(err, store.ErrNotFound) {
		writeError(rctx, fasthttp.StatusNotFound, "No draft return for "+key)
		return
	}
	log.Error().Err(err).Str("return_id", key).Msg("accessing draft return")
	writeError(rctx, fasthttp.StatusInternalServerError, "Something went wrong")
}

func writeJSON(rctx *fasthttp.RequestCtx, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		writeError(rctx, fasthttp.StatusInternalServerError, "Something went wrong")
		return
	}
	rctx.SetStatusCode(status)
	rctx.SetContentType("application/json")
	rctx.SetBody(body)
}

func writeError(rctx *fasthttp.RequestCtx, status int, message string) {
	body, _ := json.Marshal(model.ErrorResponse{Status: status, Message: message})
	rctx.SetStatusCode(status)
	rctx.SetContentType("application/json")
	rctx.SetBody(body)
}
