package api

//go:generate go run github.com/matryer/moq -out task_source_generated_mock.go -rm -stub -with-resets . TaskSource

//go:generate go run github.com/matryer/moq -out task_handler_generated_mock.go -rm -stub -with-resets . TaskHandler
