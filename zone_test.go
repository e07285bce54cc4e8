package billverify

import "testing"

func lineAt(page int, y float64, text string) Line {
	return Line{
		Text: text,
		Box:  Box{{0, y}, {100, y}, {100, y + 10}, {0, y + 10}},
		Page: page,
	}
}

func TestGetLineZoneIsPure(t *testing.T) {
	pz := PageZones{Page: 0}
	headerEnd := 100.0
	paymentStart := 500.0
	pz.HeaderEndY = &headerEnd
	pz.PaymentStartY = &paymentStart

	l := lineAt(0, 50, "Patient Name: John Doe")

	first := GetLineZone(l, pz)
	second := GetLineZone(l, pz)
	if first != second {
		t.Fatalf("GetLineZone is not pure: got %v then %v", first, second)
	}
	if first != ZoneHeader {
		t.Errorf("expected header zone, got %v", first)
	}
}

func TestGetLineZoneDecisionOrder(t *testing.T) {
	headerEnd := 100.0
	paymentStart := 500.0
	pz := PageZones{Page: 0, HeaderEndY: &headerEnd, PaymentStartY: &paymentStart}

	tests := []struct {
		name string
		line Line
		want Zone
	}{
		{"header label wins regardless of position", lineAt(0, 600, "Patient ID: 44221"), ZoneHeader},
		{"payment label wins over plain position", lineAt(0, 50, "UTR: 99883312"), ZonePayment},
		{"pre-table on page zero is header", lineAt(0, 10, "Apollo Hospitals"), ZoneHeader},
		{"past payment start is payment", lineAt(0, 550, "Total Paid 12,500.00"), ZonePayment},
		{"otherwise items", lineAt(0, 250, "Paracetamol 500mg Tablet     2   15.00   30.00"), ZoneItems},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetLineZone(tt.line, pz); got != tt.want {
				t.Errorf("GetLineZone(%q) = %v, want %v", tt.line.Text, got, tt.want)
			}
		})
	}
}

func TestDetectPageZonesFindsBoundaries(t *testing.T) {
	lines := []Line{
		lineAt(0, 10, "Apollo Hospitals"),
		lineAt(0, 40, "Patient Name: Jane Roe"),
		lineAt(0, 80, "S.No  Description  Qty  Rate  Amount"),
		lineAt(0, 120, "Medicines"),
		lineAt(0, 150, "Paracetamol 500mg     2   15.00   30.00"),
		lineAt(0, 400, "UTR: 778812233"),
	}

	pz := DetectPageZones(0, lines)
	if pz.HeaderEndY == nil || *pz.HeaderEndY != 80 {
		t.Fatalf("expected header_end_y 80, got %v", pz.HeaderEndY)
	}
	if pz.PaymentStartY == nil || *pz.PaymentStartY != 400 {
		t.Fatalf("expected payment_start_y 400, got %v", pz.PaymentStartY)
	}
}
