package models

import "net/http"

// ApiResponse is the envelope every JSON body is wrapped in.
type ApiResponse[T any] struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    *T     `json:"data"`
}

func Success[T any](data T) ApiResponse[T] {
	return ApiResponse[T]{Code: http.StatusOK, Message: "success", Data: &data}
}

// Empty is a success envelope with "data": null.
func Empty() ApiResponse[struct{}] {
	return ApiResponse[struct{}]{Code: http.StatusOK, Message: "success"}
}
