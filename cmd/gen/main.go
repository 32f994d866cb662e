// Command gen regenerates the typed query package from the persistence models.
//
//	go run ./cmd/gen
package main

import (
	"backoffice/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery,
	})

	g.ApplyBasic(model.All()...)

	g.Execute()
}
