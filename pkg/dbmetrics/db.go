// Package dbmetrics wraps *sql.DB so that every query is timed into the
// service metrics. Repositories depend on the DBExecutor interface and
// accept either the bare *sql.DB or the wrapped one.
package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/jporcarn/dralia/pkg/metrics"
)

// DBExecutor интерфейс исполнителя запросов.
// Реализуется как *sql.DB, так и *dbmetrics.DB.
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// DB обёртка над *sql.DB с записью метрик
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
}

const defaultPoolPollInterval = 15 * time.Second

// WrapWithDefault оборачивает db и запускает фоновый сбор метрик
// connection pool до закрытия stopCh.
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, stopCh <-chan struct{}) *DB {
	wrapped := &DB{db: db, metrics: m}
	go wrapped.collectPoolStats(stopCh)
	return wrapped
}

// ExecContext выполняет запрос без результата
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.observe(query, err, time.Since(start))
	return res, err
}

// QueryContext выполняет запрос, возвращающий строки
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.observe(query, err, time.Since(start))
	return rows, err
}

// QueryRowContext выполняет запрос, возвращающий одну строку.
// Ошибка откладывается до Scan, поэтому здесь считаем только длительность.
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.observe(query, nil, time.Since(start))
	return row
}

func (d *DB) observe(query string, err error, duration time.Duration) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	d.metrics.ObserveDBQuery(queryLabel(query), outcome, duration)
}

func (d *DB) collectPoolStats(stopCh <-chan struct{}) {
	ticker := time.NewTicker(defaultPoolPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			d.metrics.SetOpenConnections(d.db.Stats().OpenConnections)
		}
	}
}

// queryLabel сводит SQL к метке с низкой кардинальностью: глагол запроса
func queryLabel(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.ToLower(fields[0])
}
