package handler

import (
	"errors"
	"fmt"
	"net/http"

	"financeguard/internal/fhe"
	"financeguard/internal/http/payload"
	"financeguard/internal/relayer"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"go.uber.org/zap"
)

var (
	GetPublicKey  = "GET /coprocessor/public-key"
	RegisterInput = "POST /coprocessor/inputs"
	UserDecrypt   = "POST /relayer/user-decrypt"
)

type RelayerHandler struct {
	responder
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	inputs           InputRegistrar
	decryption       DecryptionService
	contract         common.Address
}

func NewRelayerHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, inputs InputRegistrar, decryption DecryptionService, contract common.Address) *RelayerHandler {
	return &RelayerHandler{
		responder:        responder{logs: logger},
		logs:             logger,
		requestValidator: requestValidator,
		inputs:           inputs,
		decryption:       decryption,
		contract:         contract,
	}
}

func (h *RelayerHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc(GetPublicKey, h.HandleGetPublicKey)
	mux.HandleFunc(RegisterInput, h.HandleRegisterInput)
	mux.HandleFunc(UserDecrypt, h.HandleUserDecrypt)
}

func (h *RelayerHandler) HandleGetPublicKey(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r.Context())

	network := payload.NewNetwork(
		h.inputs.PublicKey(),
		h.decryption.Domain(),
		h.contract,
		h.inputs.VerifierAddress(),
	)
	h.respond(w, Response{Data: network}, http.StatusOK, requestId)
}

func (h *RelayerHandler) HandleRegisterInput(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r.Context())

	var req payload.InputRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not register input",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", RegisterInput,
			"request_id", requestId)
		return
	}

	ciphertext, err := hexutil.Decode(req.Ciphertext)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not register input",
			Error:   fmt.Errorf("%w: %w", fhe.ErrInvalidCiphertext, err).Error(),
		}, http.StatusBadRequest,
			requestId)
		return
	}

	handle, proof, err := h.inputs.RegisterInput(r.Context(), ciphertext,
		common.HexToAddress(req.ContractAddress),
		common.HexToAddress(req.UserAddress))
	if err != nil {
		resp := Response{
			Message: "Could not register input",
			Error:   "unexpected error occurred",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, fhe.ErrInvalidCiphertext) {
			httpCode = http.StatusBadRequest
			resp.Error = err.Error()
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to register input",
			"error", err,
			"handler", RegisterInput,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{
		Data: payload.InputResponse{
			Handle: handle.Hex(),
			Proof:  hexutil.Encode(proof),
		},
	}, http.StatusOK, requestId)
}

func (h *RelayerHandler) HandleUserDecrypt(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r.Context())

	var body payload.UserDecryptRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &body); err != nil {
		h.respond(w, Response{
			Message: "Decryption failed",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", UserDecrypt,
			"request_id", requestId)
		return
	}

	req, err := body.ToRequest()
	if err != nil {
		h.respond(w, Response{
			Message: "Decryption failed",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		return
	}

	sealed, err := h.decryption.UserDecrypt(r.Context(), req)
	if err != nil {
		httpCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, relayer.ErrDecryptionDenied):
			httpCode = http.StatusForbidden
		case errors.Is(err, relayer.ErrServiceUnavailable):
			httpCode = http.StatusServiceUnavailable
		}

		h.respond(w, Response{
			Message: "Decryption failed",
			Error:   err.Error(),
		}, httpCode, requestId)
		h.logs.Errorw("user decryption failed",
			"error", err,
			"user", req.UserAddress.Hex(),
			"handler", UserDecrypt,
			"request_id", requestId)
		return
	}

	results := make(map[string]string, len(sealed))
	for handle, ct := range sealed {
		results[handle.Hex()] = hexutil.Encode(ct)
	}

	h.logs.Infow("user decryption served",
		"user", req.UserAddress.Hex(),
		"handles", len(results),
		"handler", UserDecrypt,
		"request_id", requestId)

	h.respond(w, Response{
		Data: payload.UserDecryptResponse{Results: results},
	}, http.StatusOK, requestId)
}
