package utils

import (
	"encoding/json"
	"net/http"

	"triviaapi/models"
)

func SendJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func SendError(w http.ResponseWriter, statusCode int, message string) {
	SendJSON(w, statusCode, models.ErrorResponse{
		Success: false,
		Error:   statusCode,
		Message: message,
	})
}

func SendNotFound(w http.ResponseWriter) {
	SendError(w, http.StatusNotFound, "resource not found")
}

func SendBadRequest(w http.ResponseWriter) {
	SendError(w, http.StatusBadRequest, "bad request")
}

func SendUnprocessable(w http.ResponseWriter) {
	SendError(w, http.StatusUnprocessableEntity, "unprocessable")
}

func SendServerError(w http.ResponseWriter) {
	SendError(w, http.StatusInternalServerError, "server error")
}
