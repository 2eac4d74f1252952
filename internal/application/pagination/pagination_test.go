package pagination

import (
	"net/url"
	"testing"
)

// TestParse_Defaults tests that missing or malformed parameters fall back
// to the defaults.
func TestParse_Defaults(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  Params
	}{
		{"empty", "", Params{Limit: DefaultLimit, Offset: 0}},
		{"explicit", "limit=10&offset=5", Params{Limit: 10, Offset: 5}},
		{"garbage limit", "limit=abc", Params{Limit: DefaultLimit, Offset: 0}},
		{"zero limit", "limit=0", Params{Limit: DefaultLimit, Offset: 0}},
		{"negative limit", "limit=-1", Params{Limit: DefaultLimit, Offset: 0}},
		{"negative offset", "offset=-5", Params{Limit: DefaultLimit, Offset: 0}},
		{"garbage offset", "offset=x", Params{Limit: DefaultLimit, Offset: 0}},
	}
	for _, tt := range tests {
		q, _ := url.ParseQuery(tt.query)
		got := Parse(q, DefaultMaxLimit)
		if got != tt.want {
			t.Errorf("%s: Parse = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

// TestParse_ClampsToMax tests that over-limit requests are clamped, not
// rejected.
func TestParse_ClampsToMax(t *testing.T) {
	q, _ := url.ParseQuery("limit=500")
	got := Parse(q, 100)
	if got.Limit != 100 {
		t.Errorf("limit = %d, want clamped 100", got.Limit)
	}

	// Zero maxLimit means no cap.
	got = Parse(q, 0)
	if got.Limit != 500 {
		t.Errorf("uncapped limit = %d, want 500", got.Limit)
	}
}

// TestPaginate_Window tests the window arithmetic across the interesting
// boundary cases.
func TestPaginate_Window(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	tests := []struct {
		name      string
		params    Params
		wantItems []int
	}{
		{"first page", Params{Limit: 2, Offset: 0}, []int{1, 2}},
		{"middle page", Params{Limit: 2, Offset: 2}, []int{3, 4}},
		{"partial last page", Params{Limit: 2, Offset: 4}, []int{5}},
		{"offset at end", Params{Limit: 2, Offset: 5}, []int{}},
		{"offset past end", Params{Limit: 2, Offset: 100}, []int{}},
		{"limit past end", Params{Limit: 100, Offset: 0}, []int{1, 2, 3, 4, 5}},
	}
	for _, tt := range tests {
		page := Paginate(items, tt.params)
		if page.Total != len(items) {
			t.Errorf("%s: total = %d, want %d", tt.name, page.Total, len(items))
		}
		if page.Limit != tt.params.Limit || page.Offset != tt.params.Offset {
			t.Errorf("%s: echoed params = %d/%d", tt.name, page.Limit, page.Offset)
		}
		if len(page.Items) != len(tt.wantItems) {
			t.Errorf("%s: got %d items, want %d", tt.name, len(page.Items), len(tt.wantItems))
			continue
		}
		for i, want := range tt.wantItems {
			if page.Items[i] != want {
				t.Errorf("%s: items[%d] = %d, want %d", tt.name, i, page.Items[i], want)
			}
		}
	}
}

// TestPaginate_EmptyInput tests that an empty listing yields an empty,
// non-nil page.
func TestPaginate_EmptyInput(t *testing.T) {
	page := Paginate([]string{}, Params{Limit: 10, Offset: 0})
	if page.Items == nil {
		t.Error("Items is nil, want empty slice")
	}
	if len(page.Items) != 0 || page.Total != 0 {
		t.Errorf("page = %+v, want empty", page)
	}
}

// TestPaginate_CopyIsolation tests that the page does not alias the input.
func TestPaginate_CopyIsolation(t *testing.T) {
	items := []int{1, 2, 3}
	page := Paginate(items, Params{Limit: 3, Offset: 0})
	page.Items[0] = 99
	if items[0] != 1 {
		t.Error("mutating the page leaked into the source slice")
	}
}
