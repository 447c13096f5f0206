package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

// Run from the module root: go run ./db/ent
func main() {
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Target:  "gen/ent",
			Package: "github.com/opsfin/invoice-engine/gen/ent",
			Schema:  "github.com/opsfin/invoice-engine/db/ent/schema",
		},
	)
	if err != nil {
		log.Fatal(err)
	}
}