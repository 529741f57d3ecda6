package calendar

import "testing"

func TestTimeOptionsEnumeration(t *testing.T) {
	got := TimeOptions("09:00", "10:00", 30)
	want := []TimeOption{
		{Value: "09:00", Label: "9:00 am"},
		{Value: "09:30", Label: "9:30 am"},
		{Value: "10:00", Label: "10:00 am"},
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("option[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestTimeOptionsTwelveHourLabels(t *testing.T) {
	cases := map[string]string{
		"00:00": "12:00 am",
		"00:05": "12:05 am",
		"11:59": "11:59 am",
		"12:00": "12:00 pm",
		"12:30": "12:30 pm",
		"13:05": "1:05 pm",
		"23:45": "11:45 pm",
	}
	for value, label := range cases {
		got := TimeOptions(value, value, 30)
		if len(got) != 1 {
			t.Fatalf("TimeOptions(%q, %q, 30) len = %d, want 1", value, value, len(got))
		}
		if got[0].Label != label {
			t.Fatalf("label for %s = %q, want %q", value, got[0].Label, label)
		}
	}
}

func TestTimeOptionsInvertedWindowIsEmpty(t *testing.T) {
	if got := TimeOptions("10:00", "09:00", 30); len(got) != 0 {
		t.Fatalf("inverted window = %v, want empty", got)
	}
}

func TestTimeOptionsDegenerateInputs(t *testing.T) {
	if got := TimeOptions("09:00", "10:00", 0); len(got) != 0 {
		t.Fatalf("zero interval = %v, want empty", got)
	}
	if got := TimeOptions("09:00", "10:00", -15); len(got) != 0 {
		t.Fatalf("negative interval = %v, want empty", got)
	}
	if got := TimeOptions("9 am", "10:00", 30); len(got) != 0 {
		t.Fatalf("malformed min = %v, want empty", got)
	}
}

func TestTimeOptionsMinutePadding(t *testing.T) {
	got := TimeOptions("08:05", "08:05", 30)
	if len(got) != 1 || got[0].Value != "08:05" || got[0].Label != "8:05 am" {
		t.Fatalf("options = %v, want single zero-padded 08:05", got)
	}
}
