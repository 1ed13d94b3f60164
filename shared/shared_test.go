package shared_test

import (
	"testing"

	"clinic/shared"
	"clinic/shared/dto"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "zero total", total: 0, limit: 10, expected: 1},
		{name: "zero limit", total: 25, limit: 0, expected: 1},
		{name: "exact pages", total: 20, limit: 10, expected: 2},
		{name: "partial last page", total: 21, limit: 10, expected: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.CalculateTotalPage(tt.total, tt.limit); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestTransformFields(t *testing.T) {
	type update struct {
		Status string `db:"status"`
		Reason string `db:"reason"`
		Note   string
	}

	fields := shared.TransformFields(update{Status: "CONFIRMED", Note: "no db tag"})

	if len(fields) != 1 {
		t.Fatalf("expected 1 field, got %d: %v", len(fields), fields)
	}

	if fields["status"] != "CONFIRMED" {
		t.Errorf("expected status=CONFIRMED, got %v", fields["status"])
	}
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID("some-id", "id", "appointments")

	where, args := group.GetWhereClause()

	if where != "(appointments.id = :id)" {
		t.Errorf("unexpected where clause: %s", where)
	}

	if args["id"] != "some-id" {
		t.Errorf("expected id arg, got %v", args)
	}
}

func TestBuildCacheKey(t *testing.T) {
	if key := shared.BuildCacheKey("appointment:get", "abc"); key != "appointment:get:abc" {
		t.Errorf("unexpected cache key: %s", key)
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10}
	filter := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "status", Value: "PENDING", Operator: dto.FilterOperatorEq},
		},
	}

	first := shared.BuildCacheKeyWithQuery("appointment:gets", params, filter)
	second := shared.BuildCacheKeyWithQuery("appointment:gets", dto.QueryParams{Page: 2, Limit: 10}, filter)

	if first == second {
		t.Error("expected different pages to produce different cache keys")
	}
}
