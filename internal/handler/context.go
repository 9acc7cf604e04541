package handler

type ContextKey string

var (
	DateCtxKey ContextKey = "date"
)
