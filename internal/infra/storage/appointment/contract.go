package appointment

import (
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
)

// DBExecutor is reused from dbmetrics so the repository works with both a
// plain *sql.DB and the metrics-wrapped one.
type DBExecutor = dbmetrics.DBExecutor
