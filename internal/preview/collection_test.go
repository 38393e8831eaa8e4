package preview

import (
	"math/rand"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecords() []Record {
	return []Record{
		{ID: "r1", ManualOrder: 2, Values: map[string]string{"name": "Banana", "price": "12"}},
		{ID: "r2", ManualOrder: 0, Values: map[string]string{"name": "apple", "price": "3"}},
		{ID: "r3", ManualOrder: 1, Values: map[string]string{"name": "Cherry", "price": "100"}},
	}
}

func recordIDs(records []Record) []string {
	ids := make([]string, len(records))
	for i, r := range records {
		ids[i] = r.ID
	}
	return ids
}

func TestSortRecords(t *testing.T) {
	tests := []struct {
		name string
		spec SortSpec
		want []string
	}{
		{"none keeps source order", SortSpec{Mode: SortNone}, []string{"r1", "r2", "r3"}},
		{"unknown mode keeps source order", SortSpec{Mode: "whatever"}, []string{"r1", "r2", "r3"}},
		{"manual sorts by manual order", SortSpec{Mode: SortManual}, []string{"r2", "r3", "r1"}},
		{"field numeric ascending", SortSpec{Mode: SortField, FieldID: "price"}, []string{"r2", "r1", "r3"}},
		{"field numeric descending", SortSpec{Mode: SortField, FieldID: "price", Direction: "desc"}, []string{"r3", "r1", "r2"}},
		{"field lexicographic when not numeric", SortSpec{Mode: SortField, FieldID: "name"}, []string{"r1", "r3", "r2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sortRecords(testRecords(), tt.spec, nil)
			require.Equal(t, tt.want, recordIDs(got))
		})
	}
}

func TestSortRecordsDoesNotMutateInput(t *testing.T) {
	records := testRecords()
	_ = sortRecords(records, SortSpec{Mode: SortManual}, nil)
	require.Equal(t, []string{"r1", "r2", "r3"}, recordIDs(records))
}

func TestSortRecordsRandomIsPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	got := sortRecords(testRecords(), SortSpec{Mode: SortRandom}, rng)
	require.Len(t, got, 3)
	require.ElementsMatch(t, []string{"r1", "r2", "r3"}, recordIDs(got))
}

func TestCollectionRepetition(t *testing.T) {
	h := newTestHost(t)
	h.send(MsgUpdateLayers, UpdateLayersPayload{
		Layers: []*Layer{{
			ID:         "list",
			Type:       "section",
			Collection: &CollectionBinding{ID: "products", Sort: SortSpec{Mode: SortManual}},
			Children: []*Layer{{
				ID:        "item",
				Type:      "text",
				TextField: "name",
			}},
		}},
		CollectionItems: map[string][]Record{"products": testRecords()},
		CollectionFields: map[string][]Field{"products": {
			{ID: "name", Name: "Name"},
			{ID: "price", Name: "Price"},
		}},
	})

	doc := h.doc()
	items := doc.Find(layerSel("item"))
	require.Equal(t, 3, items.Length())

	var texts []string
	items.Each(func(_ int, s *goquery.Selection) {
		texts = append(texts, s.Text())
	})
	assert.Equal(t, []string{"apple", "Cherry", "Banana"}, texts)
}

func TestCollectionScopeReachesDeepDescendants(t *testing.T) {
	h := newTestHost(t)
	h.send(MsgUpdateLayers, UpdateLayersPayload{
		Layers: []*Layer{{
			ID:         "list",
			Type:       "section",
			Collection: &CollectionBinding{ID: "products", Sort: SortSpec{Mode: SortManual}},
			Children: []*Layer{{
				ID:   "card",
				Type: "section",
				Children: []*Layer{{
					ID:        "deep",
					Type:      "text",
					TextField: "price",
				}},
			}},
		}},
		CollectionItems:  map[string][]Record{"products": testRecords()},
		CollectionFields: map[string][]Field{"products": {{ID: "price", Name: "Price"}}},
	})

	doc := h.doc()
	var texts []string
	doc.Find(layerSel("deep")).Each(func(_ int, s *goquery.Selection) {
		texts = append(texts, s.Text())
	})
	assert.Equal(t, []string{"3", "100", "12"}, texts)
}

func TestCollectionWithoutRecordsRendersNothing(t *testing.T) {
	h := newTestHost(t)
	h.send(MsgUpdateLayers, UpdateLayersPayload{
		Layers: []*Layer{{
			ID:         "list",
			Type:       "section",
			Collection: &CollectionBinding{ID: "missing"},
			Children:   []*Layer{{ID: "item", Type: "text", TextField: "name"}},
		}},
	})

	doc := h.doc()
	require.Equal(t, 1, doc.Find(layerSel("list")).Length())
	assert.Zero(t, doc.Find(layerSel("item")).Length())
}
