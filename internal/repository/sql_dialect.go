package repository

import (
	"strings"

	"gorm.io/gorm"
)

// likeEscape 搜索词中的通配符按字面匹配
const likeEscape = "!"

var likeEscaper = strings.NewReplacer(likeEscape, likeEscape+likeEscape, "%", likeEscape+"%", "_", likeEscape+"_")

// dialectName 数据库方言名，未知时按 sqlite 处理
func dialectName(db *gorm.DB) string {
	if db == nil || db.Dialector == nil {
		return "sqlite"
	}
	if name := strings.ToLower(strings.TrimSpace(db.Dialector.Name())); name != "" {
		return name
	}
	return "sqlite"
}

// containsCondition 多列大小写不敏感的包含匹配，列之间为 OR
// postgres 使用 ILIKE；sqlite 与 mysql 的 LIKE 默认不区分大小写
func containsCondition(dialect string, columns []string, term string) (string, []interface{}) {
	operator := "LIKE"
	if dialect == "postgres" || dialect == "postgresql" {
		operator = "ILIKE"
	}
	pattern := "%" + likeEscaper.Replace(term) + "%"

	parts := make([]string, 0, len(columns))
	args := make([]interface{}, 0, len(columns))
	for _, column := range columns {
		column = strings.TrimSpace(column)
		if column == "" {
			continue
		}
		parts = append(parts, column+" "+operator+" ? ESCAPE '"+likeEscape+"'")
		args = append(args, pattern)
	}
	return strings.Join(parts, " OR "), args
}
