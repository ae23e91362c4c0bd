package reservation

import "github.com/dev4ox/anti-cafe-reservation/pkg/txmanager"

// Переиспользуем интерфейс исполнителя запросов из txmanager,
// чтобы репозиторий одинаково работал с *sql.DB и *sql.Tx
type DBExecutor = txmanager.DBExecutor
