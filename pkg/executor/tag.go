package executor

import (
	"fmt"

	"github.com/pgsqlite/pgsqlite/pkg/util/command"
)

// BuildCommandTag constructs the CommandComplete tag PostgreSQL clients
// expect, per spec.md §4.8: "INSERT 0 <n>", "UPDATE <n>", "DELETE <n>",
// "SELECT <n>". rowsAffected is ignored for statement types that carry no
// count of their own (BEGIN/COMMIT/ROLLBACK).
func BuildCommandTag(cmdType command.SQLCommandType, rowsAffected int64) string {
	switch cmdType {
	case command.INSERT:
		return fmt.Sprintf("INSERT 0 %d", rowsAffected)
	case command.UPDATE:
		return fmt.Sprintf("UPDATE %d", rowsAffected)
	case command.DELETE:
		return fmt.Sprintf("DELETE %d", rowsAffected)
	case command.SELECT:
		return fmt.Sprintf("SELECT %d", rowsAffected)
	default:
		return string(cmdType)
	}
}
