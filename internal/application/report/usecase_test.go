package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gudangapp/gudang-api/internal/domain/entity"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func mov(name, unit, trxType, qty string, created time.Time) Movement {
	rows := enrich([]*entity.Transaction{{
		Name: name, Unit: unit, TrxType: trxType, Quantity: dec(qty), CreatedAt: created,
	}})
	return rows[0]
}

func TestTotalsByPeriod_EmptyInput(t *testing.T) {
	assert.Empty(t, TotalsByPeriod(nil, GranularityWeek, nil, nil))
	assert.Empty(t, TotalsByPeriod([]Movement{}, GranularityMonth, nil, nil))
}

func TestTotalsByPeriod_WeekBucketsAreISO(t *testing.T) {
	// 2024-01-01 is a Monday and belongs to ISO week 2024-W01;
	// 2023-01-01 is a Sunday and belongs to ISO week 2022-W52.
	movs := []Movement{
		mov("Gloves", "box", entity.TrxTypeIn, "5", time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)),
		mov("Gloves", "box", entity.TrxTypeIn, "3", time.Date(2024, 1, 3, 8, 0, 0, 0, time.UTC)),
		mov("Gloves", "box", entity.TrxTypeIn, "2", time.Date(2023, 1, 1, 8, 0, 0, 0, time.UTC)),
	}

	got := TotalsByPeriod(movs, GranularityWeek, nil, nil)
	require.Len(t, got, 2)
	assert.Equal(t, "2022-W52", got[0].Period)
	assert.True(t, got[0].Total.Equal(dec("2")))
	assert.Equal(t, "2024-W01", got[1].Period)
	assert.True(t, got[1].Total.Equal(dec("8")), "same bucket+item+type sums up")
}

func TestTotalsByPeriod_MonthGroupsByItemUnitAndType(t *testing.T) {
	jan := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	movs := []Movement{
		mov("Gloves", "box", entity.TrxTypeIn, "5", jan),
		mov("Gloves", "box", entity.TrxTypeOut, "2", jan),
		mov("Gloves", "pcs", entity.TrxTypeIn, "10", jan),
	}

	got := TotalsByPeriod(movs, GranularityMonth, nil, nil)
	require.Len(t, got, 3)
	for _, row := range got {
		assert.Equal(t, "2024-01", row.Period)
	}
	// Sorted by name, unit, type: box/in, box/out, pcs/in.
	assert.Equal(t, entity.TrxTypeIn, got[0].TrxType)
	assert.True(t, got[0].Total.Equal(dec("5")))
	assert.Equal(t, entity.TrxTypeOut, got[1].TrxType)
	assert.Equal(t, "pcs", got[2].Unit)
}

func TestTotalsByPeriod_DateBounds(t *testing.T) {
	movs := []Movement{
		mov("Gloves", "box", entity.TrxTypeIn, "5", time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)),
		mov("Gloves", "box", entity.TrxTypeIn, "7", time.Date(2024, 2, 10, 8, 0, 0, 0, time.UTC)),
	}
	from := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC)

	got := TotalsByPeriod(movs, GranularityMonth, &from, &to)
	require.Len(t, got, 1)
	assert.Equal(t, "2024-02", got[0].Period)
}

func TestFilterByTypeAndRange_InclusiveBounds(t *testing.T) {
	first := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	last := time.Date(2024, 3, 31, 23, 0, 0, 0, time.UTC)
	movs := []Movement{
		mov("Gloves", "box", entity.TrxTypeOut, "1", first),
		mov("Gloves", "box", entity.TrxTypeOut, "2", last),
		mov("Gloves", "box", entity.TrxTypeIn, "3", first),
		mov("Gloves", "box", entity.TrxTypeOut, "4", time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)),
	}

	got := FilterByTypeAndRange(movs, entity.TrxTypeOut,
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC))
	require.Len(t, got, 2, "both boundary days included, other types and later dates excluded")
	assert.True(t, got[0].Quantity.Equal(dec("1")))
	assert.True(t, got[1].Quantity.Equal(dec("2")))
}

func TestTotalsByItem(t *testing.T) {
	jan := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 15, 10, 0, 0, 0, time.UTC)
	movs := []Movement{
		mov("Gloves", "box", entity.TrxTypeIn, "5", jan),
		mov("Gloves", "box", entity.TrxTypeIn, "5", feb),
		mov("Gloves", "box", entity.TrxTypeOut, "3", feb),
	}

	got := TotalsByItem(movs)
	require.Len(t, got, 2)
	assert.True(t, got[0].Total.Equal(dec("10")), "in totals span all periods")
	assert.True(t, got[1].Total.Equal(dec("3")))
}

func TestEnrichKeepsLocalCalendarDay(t *testing.T) {
	// 01:30 east of UTC is still 18:30 the previous day in UTC; the derived
	// date must stay on the local calendar day.
	wib := time.FixedZone("WIB", 7*60*60)
	created := time.Date(2024, 3, 5, 1, 30, 0, 0, wib)

	m := mov("Gauze", "roll", entity.TrxTypeOut, "2", created)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, wib), m.Date)

	day := time.Date(2024, 3, 5, 0, 0, 0, 0, wib)
	got := FilterByTypeAndRange([]Movement{m}, entity.TrxTypeOut, day, day)
	require.Len(t, got, 1, "movement on the boundary day stays inside the range")

	before := time.Date(2024, 3, 4, 0, 0, 0, 0, wib)
	assert.Empty(t, FilterByTypeAndRange([]Movement{m}, entity.TrxTypeOut, before, before))
}
