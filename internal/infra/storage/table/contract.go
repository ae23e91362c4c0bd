package table

import "github.com/dev4ox/anti-cafe-reservation/pkg/txmanager"

type DBExecutor = txmanager.DBExecutor
