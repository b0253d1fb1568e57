package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/wellywell/leadrelay/internal/metrics"
	"github.com/wellywell/leadrelay/internal/types"
	"github.com/wellywell/leadrelay/internal/validate"
)

const maxBodyBytes = 64 << 10

type OrderStore interface {
	CreateOrder(ctx context.Context, name string, contact string, details string) (types.Order, error)
	ListOrders(ctx context.Context) ([]types.Order, error)
}

// Notifier delivers a new order to the operators without blocking the request.
type Notifier interface {
	NotifyAsync(order types.Order) <-chan error
}

type HandlerSet struct {
	database OrderStore
	notifier Notifier
}

var (
	ErrCouldNotParseBody = errors.New("could not parse body")
)

func NewHandlerSet(database OrderStore, notifier Notifier) *HandlerSet {
	return &HandlerSet{
		database: database,
		notifier: notifier,
	}
}

type orderRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Details string `json:"details"`
}

type createdResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	OrderID int    `json:"orderId"`
}

type listResponse struct {
	Data []types.Order `json:"data"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *HandlerSet) parseOrder(w http.ResponseWriter, req *http.Request) (orderRequest, error) {
	var data orderRequest

	dec := json.NewDecoder(http.MaxBytesReader(w, req.Body, maxBodyBytes))
	err := dec.Decode(&data)
	if err != nil {
		return orderRequest{}, ErrCouldNotParseBody
	}
	// exactly one JSON value, nothing after it
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return orderRequest{}, ErrCouldNotParseBody
	}
	return data, nil
}

func (h *HandlerSet) HandlePostOrder(w http.ResponseWriter, req *http.Request) {

	data, err := h.parseOrder(w, req)
	if err != nil {
		metrics.OrdersInvalidTotal.Inc()
		writeError(w, http.StatusBadRequest, "Could not parse body")
		return
	}

	submission, err := validate.OrderSubmission(data.Name, data.Contact, data.Details)
	if err != nil {
		metrics.OrdersInvalidTotal.Inc()
		var verr *validate.ValidationError
		if errors.As(err, &verr) && !verr.HasMissing() {
			writeError(w, http.StatusBadRequest, "Field too long: "+strings.Join(verr.TooLong, ", "))
			return
		}
		writeError(w, http.StatusBadRequest, "Name and Contact are required")
		return
	}

	order, err := h.database.CreateOrder(req.Context(), submission.Name, submission.Contact, submission.Details)
	if err != nil {
		logger.Error(err)
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	metrics.OrdersCreatedTotal.Inc()
	logger.Infof("Order #%d stored", order.ID)

	writeJSON(w, http.StatusCreated, createdResponse{
		Success: true,
		Message: "Order created",
		OrderID: order.ID,
	})

	if h.notifier != nil {
		h.notifier.NotifyAsync(order)
	}
}

func (h *HandlerSet) HandleGetOrders(w http.ResponseWriter, req *http.Request) {

	orders, err := h.database.ListOrders(req.Context())
	if err != nil {
		logger.Error(err)
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if orders == nil {
		orders = []types.Order{}
	}

	writeJSON(w, http.StatusOK, listResponse{Data: orders})
}

func HandleHealth(w http.ResponseWriter, req *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	response, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "Could not serialize result",
			http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(response)
	if err != nil {
		logger.Errorf("Could not write response: %s", err.Error())
	}
}
