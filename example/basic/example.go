package example

import (
	"context"
	"embed"

	"github.com/vippsas/sqllex"
)

//go:embed *.sql
//go:embed */*.sql
var sqlfs embed.FS

var SQL = sqllex.MustInclude(context.Background(), sqllex.Options{}, sqlfs)
