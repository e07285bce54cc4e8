package verify

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/shopspring/decimal"

	bv "billverify"
	"billverify/semindex"
)

// hospitalCatalog is everything the orchestrator needs to verify bills
// against one loaded hospital rate sheet.
type hospitalCatalog struct {
	sheet         bv.TieUpRateSheet
	categoryIndex *semindex.Index
	categoryByID  map[string]string
	itemIndexes   map[bv.Category]*semindex.Index
	itemCatalog   map[bv.Category]map[string]CatalogEntry
}

// Orchestrator owns the three-level semantic indices (built once per
// rate-sheet reload, immutable thereafter) and drives per-bill
// verification, per §4.N.
type Orchestrator struct {
	cfg           *bv.Config
	client        *semindex.EmbeddingClient
	matcher       *Matcher
	hospitalIndex *semindex.Index
	hospitalByID  map[string]*hospitalCatalog
}

// NewOrchestrator builds an Orchestrator with a fresh, empty index set.
// Call LoadRateSheets to populate it; reloads replace the whole set
// transactionally (on any indexing error the previous set stays live).
func NewOrchestrator(cfg *bv.Config, client *semindex.EmbeddingClient, adjudicator Adjudicator) *Orchestrator {
	return &Orchestrator{
		cfg:           cfg,
		client:        client,
		matcher:       NewMatcher(cfg, adjudicator),
		hospitalIndex: semindex.New(client, semindex.NewMemoryStore()),
		hospitalByID:  map[string]*hospitalCatalog{},
	}
}

// LoadRateSheets indexes hospitals, their categories, and their items into
// a fresh index set. A failure to index any hospital, category or item is
// logged and the remaining entries are still attempted, but the call then
// returns an error and the orchestrator's previous index set stays live.
func (o *Orchestrator) LoadRateSheets(ctx context.Context, sheets []bv.TieUpRateSheet) error {
	newHospitalIndex := semindex.New(o.client, semindex.NewMemoryStore())
	newByID := map[string]*hospitalCatalog{}

	indexed := 0
	failures := 0
	for i, sheet := range sheets {
		id := fmt.Sprintf("hospital|%d", i)
		if err := newHospitalIndex.Add(ctx, id, sheet.HospitalName); err != nil {
			log.Printf("verify: failed to index hospital %q: %v", sheet.HospitalName, err)
			failures++
			continue
		}

		hc := &hospitalCatalog{
			sheet:         sheet,
			categoryIndex: semindex.New(o.client, semindex.NewMemoryStore()),
			categoryByID:  map[string]string{},
			itemIndexes:   map[bv.Category]*semindex.Index{},
			itemCatalog:   map[bv.Category]map[string]CatalogEntry{},
		}

		for ci, cat := range sheet.Categories {
			catID := fmt.Sprintf("cat|%d", ci)
			if err := hc.categoryIndex.Add(ctx, catID, cat.CategoryName); err != nil {
				log.Printf("verify: failed to index category %q for %q: %v", cat.CategoryName, sheet.HospitalName, err)
				failures++
				continue
			}
			hc.categoryByID[catID] = cat.CategoryName

			resolvedCat, _ := bv.ClassifyByKeyword(cat.CategoryName)
			if hc.itemIndexes[resolvedCat] == nil {
				hc.itemIndexes[resolvedCat] = semindex.New(o.client, semindex.NewMemoryStore())
				hc.itemCatalog[resolvedCat] = map[string]CatalogEntry{}
			}
			for ii, item := range cat.Items {
				itemID := fmt.Sprintf("item|%d|%d", ci, ii)
				if err := hc.itemIndexes[resolvedCat].Add(ctx, itemID, item.ItemName); err != nil {
					log.Printf("verify: failed to index item %q: %v", item.ItemName, err)
					failures++
					continue
				}
				hc.itemCatalog[resolvedCat][itemID] = CatalogEntry{Item: item, Category: resolvedCat}
			}
		}

		newByID[id] = hc
		indexed++
	}

	if indexed == 0 && len(sheets) > 0 {
		return bv.NewBillError(bv.ErrIndexingFailure, "failed to index any rate sheet", nil)
	}
	if failures > 0 {
		return bv.NewBillError(bv.ErrIndexingFailure, fmt.Sprintf("failed to index %d rate-sheet entries; previous index set kept", failures), nil)
	}

	o.hospitalIndex = newHospitalIndex
	o.hospitalByID = newByID
	return nil
}

// Verify runs the full per-bill pipeline of §4.N and returns a Report.
func (o *Orchestrator) Verify(ctx context.Context, doc *bv.BillDocument) (*Report, error) {
	report := &Report{}

	// Step 1: hospital match (best similarity, no threshold).
	hospitalName := doc.Source
	matches, err := o.hospitalIndex.Query(ctx, hospitalName, 1)
	if err != nil || len(matches) == 0 {
		return nil, bv.NewBillError(bv.ErrIndexingFailure, "no hospital rate sheets loaded", err)
	}
	hc := o.hospitalByID[matches[0].Entry.ID]
	sim := float64(matches[0].Similarity)
	report.Hospital = hospitalName
	report.MatchedHospital = hc.sheet.HospitalName
	report.HospitalSimilarity = &sim

	cats := make([]bv.Category, 0, len(doc.Items))
	for cat := range doc.Items {
		cats = append(cats, cat)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })

	for _, cat := range cats {
		items := doc.Items[cat]
		catResult := CategoryResult{Category: cat}

		// Step 2: category match. The best hospital category and its
		// similarity are recorded; no threshold is applied, and item
		// matching below uses the item index of the bill's own category.
		var catSim *float64
		if catMatches, err := hc.categoryIndex.Query(ctx, string(cat), 1); err == nil && len(catMatches) > 0 {
			s := float64(catMatches[0].Similarity)
			catSim = &s
			catResult.MatchedCategory = hc.categoryByID[catMatches[0].Entry.ID]
		}
		catResult.CategorySimilarity = catSim

		itemIndex := hc.itemIndexes[cat]
		catalog := hc.itemCatalog[cat]

		for _, item := range items {
			var outcome Outcome
			if isAdministrative(item.Description, cat) {
				outcome = Outcome{Decision: DecisionReject, FailureReason: FailureAdminCharge}
			} else {
				outcome = o.matcher.Match(ctx, cat, item.Description, itemIndex, catalog)
			}
			res, _ := CheckPrice(item, outcome)
			catResult.Items = append(catResult.Items, res)
			tallyInto(report, res)
		}

		report.Results = append(report.Results, catResult)
	}

	report.FinancialsBalanced = checkReconciliation(report)
	logPostConditions(doc, report)

	return report, nil
}

func isAdministrative(description string, cat bv.Category) bool {
	return cat == bv.CategoryAdministrative
}

func tallyInto(report *Report, res ItemVerificationResult) {
	switch res.Status.Normalize() {
	case StatusGreen:
		report.Counts.Green++
		report.TotalBillAmount = report.TotalBillAmount.Add(res.BillAmount)
		report.TotalAllowedAmount = report.TotalAllowedAmount.Add(res.BillAmount)
	case StatusRed:
		report.Counts.Red++
		report.TotalBillAmount = report.TotalBillAmount.Add(res.BillAmount)
		report.TotalAllowedAmount = report.TotalAllowedAmount.Add(res.AllowedAmount)
		report.TotalExtraAmount = report.TotalExtraAmount.Add(res.ExtraAmount)
	case StatusUnclassified:
		report.Counts.Unclassified++
		report.TotalBillAmount = report.TotalBillAmount.Add(res.BillAmount)
		report.TotalUnclassifiedAmount = report.TotalUnclassifiedAmount.Add(res.BillAmount)
	case StatusAllowedNotComparable:
		report.Counts.AllowedNotComparable++
		report.TotalAllowedNotComparable = report.TotalAllowedNotComparable.Add(res.BillAmount)
	case StatusIgnoredArtifact:
		report.Counts.Ignored++
	}
}

func checkReconciliation(report *Report) bool {
	total := report.TotalAllowedAmount.Add(report.TotalExtraAmount).Add(report.TotalUnclassifiedAmount)
	diff := report.TotalBillAmount.Sub(total).Abs()
	return diff.LessThan(decimal.NewFromFloat(0.01))
}

// logPostConditions checks completeness and counter reconciliation and
// logs any violation; per §4.N step 5 these are never raised as errors.
func logPostConditions(doc *bv.BillDocument, report *Report) {
	inputCount := 0
	for _, items := range doc.Items {
		inputCount += len(items)
	}
	outputCount := 0
	for _, cr := range report.Results {
		outputCount += len(cr.Items)
	}
	if inputCount != outputCount {
		log.Printf("verify: completeness warning: %d input items, %d output items", inputCount, outputCount)
	}

	counted := report.Counts.Green + report.Counts.Red + report.Counts.Unclassified +
		report.Counts.Ignored + report.Counts.AllowedNotComparable
	if counted != outputCount {
		log.Printf("verify: counter mismatch: status counts sum to %d, item total is %d", counted, outputCount)
	}
}

// GroupDisplayRows aggregates identical (normalized_name, matched_reference,
// category) tuples into a single display row, per §4.N step 6, resolving
// status by priority while preserving the underlying line-item breakdown.
func GroupDisplayRows(items []ItemVerificationResult) []DisplayRow {
	byKey := map[string]*DisplayRow{}
	var order []string

	for _, it := range items {
		matchedRef := ""
		if it.MatchedItem != nil {
			matchedRef = it.MatchedItem.ItemName
		}
		key := it.NormalizedName + "|" + matchedRef + "|" + string(it.BillItem.Category)
		row, ok := byKey[key]
		if !ok {
			row = &DisplayRow{NormalizedName: it.NormalizedName, MatchedReference: matchedRef, Category: it.BillItem.Category, Status: it.Status}
			byKey[key] = row
			order = append(order, key)
		}
		row.Status = HigherPriorityStatus(row.Status, it.Status)
		row.LineItems = append(row.LineItems, it)
	}

	rows := make([]DisplayRow, 0, len(order))
	for _, k := range order {
		rows = append(rows, *byKey[k])
	}
	return rows
}

// DisplayRow is one grouped verification-report row.
type DisplayRow struct {
	NormalizedName   string
	MatchedReference string
	Category         bv.Category
	Status           VerificationStatus
	LineItems        []ItemVerificationResult
}
