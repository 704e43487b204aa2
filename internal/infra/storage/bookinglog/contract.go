package bookinglog

import "github.com/jporcarn/dralia/pkg/dbmetrics"

// Переиспользуем интерфейс исполнителя запросов из dbmetrics.
// Репозиторий принимает как *sql.DB, так и обёртку с метриками.
type DBExecutor = dbmetrics.DBExecutor
