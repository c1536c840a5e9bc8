package pipeline

import (
	"slices"
	"testing"

	"github.com/jkhomeclaw/tripview/internal/model"
)

func fixtureTrip() model.Trip {
	return model.Trip{
		Meta: model.TripMeta{
			Title:               "Tohoku",
			DaysCount:           2,
			Travelers:           2,
			Budget:              10000,
			HomeCurrency:        "TWD",
			DestinationCurrency: "JPY",
			ExchangeRate:        0.215,
		},
		Days: []model.Day{
			{
				DayNumber:             1,
				Accommodation:         "Inn",
				AccommodationCost:     10000,
				AccommodationCurrency: "JPY",
				Stops: []model.Stop{
					{Time: "09:00", Name: "Sendai Station", Transport: "JR", Cost: 1000, Currency: "JPY", Tags: []string{"📷 攝影點"}},
					{Time: "12:00", Name: "Zuihoden", Cost: 570, Currency: "JPY", Tags: []string{"⛩️ 神社", "📷 攝影點"}},
					{Time: "15:00", Name: "Free park", Cost: 0, Currency: "JPY"},
					{Time: "18:00", Name: "牛舌 dinner", Cost: 3000, Currency: "JPY", Tags: []string{"🍖 美食"}},
				},
			},
			{
				DayNumber: 2,
				Stops: []model.Stop{
					{Time: "08:00", Name: "早餐 buffet", Cost: 500, Currency: "TWD"},
					{Time: "10:00", Name: "Bus", Transport: "bus", Cost: 210, Currency: "JPY"},
					{Time: "13:00", Name: "Museum", Cost: 1000, Currency: "JPY"},
				},
			},
		},
	}
}

func TestInCategory(t *testing.T) {
	tests := []struct {
		name string
		stop model.Stop
		want []model.Category
	}{
		{"transport mode", model.Stop{Name: "Shinkansen", Transport: "JR"}, []model.Category{model.CategoryTransport}},
		{"food-like transport", model.Stop{Name: "早餐 shuttle", Transport: "bus"}, []model.Category{model.CategoryTransport, model.CategoryFood}},
		{"beef tongue", model.Stop{Name: "牛舌 Tasuke"}, []model.Category{model.CategoryFood, model.CategoryAttraction}},
		{"breakfast", model.Stop{Name: "早餐"}, []model.Category{model.CategoryFood, model.CategoryAttraction}},
		{"noodles", model.Stop{Name: "拉麵 shop"}, []model.Category{model.CategoryFood, model.CategoryAttraction}},
		{"rice", model.Stop{Name: "海鮮丼飯"}, []model.Category{model.CategoryFood, model.CategoryAttraction}},
		{"meal", model.Stop{Name: "午餐"}, []model.Category{model.CategoryFood, model.CategoryAttraction}},
		{"sight", model.Stop{Name: "Matsushima"}, []model.Category{model.CategoryAttraction}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, cat := range model.Categories {
				want := slices.Contains(tt.want, cat)
				if got := InCategory(tt.stop, cat); got != want {
					t.Errorf("InCategory(%q, %s) = %v, want %v", tt.stop.Name, cat, got, want)
				}
			}
		})
	}
}

func TestBudget_OverlappingCategories(t *testing.T) {
	trip := model.Trip{
		Meta: model.TripMeta{Travelers: 1, HomeCurrency: "TWD", DestinationCurrency: "JPY", ExchangeRate: 0.215},
		Days: []model.Day{{
			DayNumber: 1,
			Stops: []model.Stop{
				{Time: "08:00", Name: "早餐 shuttle", Transport: "bus", Cost: 1000, Currency: "JPY"},
				{Time: "10:00", Name: "Zuihoden", Cost: 1000, Currency: "JPY"},
				{Time: "18:00", Name: "牛舌 dinner", Cost: 1000, Currency: "JPY"},
			},
		}},
	}

	tests := []struct {
		cat       model.Category
		wantItems int
		wantTotal int64
	}{
		{model.CategoryTransport, 1, 215},
		{model.CategoryFood, 2, 430},
		{model.CategoryAttraction, 2, 430},
	}
	for _, tt := range tests {
		d := Budget(trip, tt.cat)
		if len(d.Items) != tt.wantItems || d.Total != tt.wantTotal {
			t.Errorf("Budget(%s) = %d items, total %d; want %d items, total %d",
				tt.cat, len(d.Items), d.Total, tt.wantItems, tt.wantTotal)
		}
	}

	// Each stop counts once in the grand total.
	if sum := BudgetAll(trip); sum.Total != 645 {
		t.Errorf("BudgetAll Total = %d, want 645", sum.Total)
	}
}

func TestBudget(t *testing.T) {
	trip := fixtureTrip()

	// transport 215+45.15, food 645+500 (home currency passes through),
	// attraction 122.55+645+500+215 with the free stop excluded.
	tests := []struct {
		cat       model.Category
		wantItems int
		wantTotal int64
	}{
		{model.CategoryAccommodation, 1, 2150},
		{model.CategoryTransport, 2, 260},
		{model.CategoryFood, 2, 1145},
		{model.CategoryAttraction, 4, 1483},
	}
	for _, tt := range tests {
		t.Run(string(tt.cat), func(t *testing.T) {
			d := Budget(trip, tt.cat)
			if len(d.Items) != tt.wantItems {
				t.Errorf("len(Items) = %d, want %d", len(d.Items), tt.wantItems)
			}
			if d.Total != tt.wantTotal {
				t.Errorf("Total = %d, want %d", d.Total, tt.wantTotal)
			}
			if d.Currency != "TWD" {
				t.Errorf("Currency = %q, want TWD", d.Currency)
			}
			if d.Title != tt.cat.Title() {
				t.Errorf("Title = %q, want %q", d.Title, tt.cat.Title())
			}
		})
	}
}

func TestBudget_ItemsKeepOriginalCurrency(t *testing.T) {
	d := Budget(fixtureTrip(), model.CategoryFood)
	first := d.Items[0]
	if first.Name != "牛舌 dinner" || first.Cost != 3000 || first.Currency != "JPY" || first.DayNumber != 1 {
		t.Errorf("first item = %+v", first)
	}
	if first.Converted != 645 {
		t.Errorf("Converted = %v, want 645", first.Converted)
	}
	second := d.Items[1]
	if second.Currency != "TWD" || second.Converted != 500 {
		t.Errorf("home-currency item = %+v, want pass-through 500", second)
	}
}

func TestBudget_EmptyCategory(t *testing.T) {
	trip := fixtureTrip()
	trip.Days[0].AccommodationCost = 0

	d := Budget(trip, model.CategoryAccommodation)
	if d.Items == nil || len(d.Items) != 0 {
		t.Errorf("Items = %#v, want empty non-nil slice", d.Items)
	}
	if d.Total != 0 {
		t.Errorf("Total = %d, want 0", d.Total)
	}
}

func TestBudget_UnnamedAccommodation(t *testing.T) {
	trip := fixtureTrip()
	trip.Days[0].Accommodation = ""

	d := Budget(trip, model.CategoryAccommodation)
	if d.Items[0].Name != defaultAccommodationName {
		t.Errorf("Name = %q, want %q", d.Items[0].Name, defaultAccommodationName)
	}
}

func TestBudgetAll(t *testing.T) {
	sum := BudgetAll(fixtureTrip())

	if len(sum.Categories) != 4 {
		t.Fatalf("len(Categories) = %d, want 4", len(sum.Categories))
	}
	for i, cat := range model.Categories {
		if sum.Categories[i].Category != cat {
			t.Errorf("Categories[%d] = %s, want %s", i, sum.Categories[i].Category, cat)
		}
	}
	if sum.Total != 3893 {
		t.Errorf("Total = %d, want 3893", sum.Total)
	}
	if sum.PerTraveler != 1947 { // 1946.5 rounds away from zero
		t.Errorf("PerTraveler = %d, want 1947", sum.PerTraveler)
	}
	if sum.BudgetUsed < 0.3892 || sum.BudgetUsed > 0.3894 {
		t.Errorf("BudgetUsed = %v, want ~0.3893", sum.BudgetUsed)
	}
	food, ok := sum.ByCategory(model.CategoryFood)
	if !ok || food.Total != 1145 {
		t.Errorf("ByCategory(food) = %+v, %v", food, ok)
	}
}

func TestBudgetAll_NoBudget(t *testing.T) {
	trip := fixtureTrip()
	trip.Meta.Budget = 0
	trip.Meta.Travelers = 0

	sum := BudgetAll(trip)
	if sum.BudgetUsed != 0 {
		t.Errorf("BudgetUsed = %v, want 0", sum.BudgetUsed)
	}
	if sum.PerTraveler != sum.Total {
		t.Errorf("PerTraveler = %d, want %d with zero travelers", sum.PerTraveler, sum.Total)
	}
}

func TestDayCost(t *testing.T) {
	trip := fixtureTrip()
	if got := DayCost(trip, trip.Days[0]); got != 3133 { // 2150 + 215 + 122.55 + 645
		t.Errorf("DayCost(day 1) = %d, want 3133", got)
	}
	if got := DayCost(trip, trip.Days[1]); got != 760 { // 500 + 45.15 + 215
		t.Errorf("DayCost(day 2) = %d, want 760", got)
	}
}

func BenchmarkBudgetAll(b *testing.B) {
	trip := fixtureTrip()
	for i := 0; i < 30; i++ {
		d := trip.Days[i%2]
		d.DayNumber = i + 3
		trip.Days = append(trip.Days, d)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = BudgetAll(trip)
	}
}
