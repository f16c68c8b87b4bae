// Package db хранит SQL-миграции схемы, встроенные в бинарник.
package db

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir — каталог внутри Migrations, в котором лежат файлы миграций.
const MigrationsDir = "migrations"
