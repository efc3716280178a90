package dto

// CompleteTaskRequest registra una ejecución completada de una tarea.
type CompleteTaskRequest struct {
	Notes string `json:"notes"`
}
