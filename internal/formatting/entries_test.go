package formatting

import (
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestDisplayName(t *testing.T) {
	assert.Equal(t, NamePlaceholder, DisplayName(types.PersonalInfo{}))
	assert.Equal(t, NamePlaceholder, DisplayName(types.PersonalInfo{FullName: types.String("")}))
	assert.Equal(t, "Ada Lovelace", DisplayName(types.PersonalInfo{FullName: types.String("Ada Lovelace")}))
}

func TestDateRange_CurrentIgnoresEndDate(t *testing.T) {
	got := Default().DateRange(types.String("2021-03"), types.String("2022-01"), true)
	assert.Equal(t, "Mar 2021 - Present", got)
}

func TestDateRange_Ended(t *testing.T) {
	got := Default().DateRange(types.String("2021-03"), types.String("2022-01"), false)
	assert.Equal(t, "Mar 2021 - Jan 2022", got)
}

func TestDateRange_MissingDates(t *testing.T) {
	assert.Equal(t, " - ", Default().DateRange(nil, nil, false))
	assert.Equal(t, " - Present", Default().DateRange(nil, nil, true))
}

func TestDegreeLine(t *testing.T) {
	assert.Equal(t, "B.Sc. in Physics", DegreeLine(types.String("B.Sc."), types.String("Physics")))
	assert.Equal(t, "B.Sc.", DegreeLine(types.String("B.Sc."), nil))
	assert.Equal(t, "B.Sc.", DegreeLine(types.String("B.Sc."), types.String("")))
	assert.Equal(t, "Physics", DegreeLine(nil, types.String("Physics")))
	assert.Equal(t, "", DegreeLine(nil, nil))
}

func TestGPALabel(t *testing.T) {
	assert.Equal(t, "GPA: 3.9", GPALabel(types.String("3.9")))
	assert.Equal(t, "", GPALabel(nil))
}
