// Package psqlbuilder тонкая обёртка над squirrel с плейсхолдерами Postgres.
// Все репозитории строят запросы через неё, чтобы формат $1..$n не
// проставлялся вручную в каждом месте.
package psqlbuilder

import "github.com/Masterminds/squirrel"

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select начинает SELECT с плейсхолдерами $n
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

// Insert начинает INSERT с плейсхолдерами $n
func Insert(table string) squirrel.InsertBuilder {
	return builder.Insert(table)
}

// Update начинает UPDATE с плейсхолдерами $n
func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

// Delete начинает DELETE с плейсхолдерами $n
func Delete(table string) squirrel.DeleteBuilder {
	return builder.Delete(table)
}
