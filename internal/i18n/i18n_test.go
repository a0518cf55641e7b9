package i18n

import "testing"

func TestTextsFor_FallsBackToKorean(t *testing.T) {
	tests := []struct {
		name string
		lang string
	}{
		{name: "empty", lang: ""},
		{name: "unknown code", lang: "fr"},
		{name: "uppercase is not matched", lang: "EN"},
		{name: "garbage", lang: "xx-YY"},
	}

	ko := TextsFor("ko")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TextsFor(tt.lang); got != ko {
				t.Errorf("TextsFor(%q) did not fall back to the Korean texts", tt.lang)
			}
		})
	}
}

func TestTextsFor_SupportedLocales(t *testing.T) {
	for _, lang := range []string{"ko", "en", "zh", "vi"} {
		tx := TextsFor(lang)
		if tx.Greeting == "" || tx.ErrorPrefix == "" || tx.TableTitle == "" {
			t.Errorf("TextsFor(%q) has empty required strings: %+v", lang, tx)
		}
	}
	if TextsFor("en").TableTitle != "Search Results" {
		t.Errorf("unexpected English table title: %q", TextsFor("en").TableTitle)
	}
}

func TestColumnLabel(t *testing.T) {
	tests := []struct {
		name string
		lang string
		key  string
		want string
	}{
		{name: "known key ko", lang: "ko", key: "grfe", want: "보증금"},
		{name: "known key en", lang: "en", key: "rtfe", want: "Monthly Rent"},
		{name: "known key vi", lang: "vi", key: "cgg_nm", want: "Quận"},
		{name: "unknown key falls back to key", lang: "en", key: "deal_price", want: "deal_price"},
		{name: "unknown locale uses korean labels", lang: "fr", key: "stdg_nm", want: "동"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ColumnLabel(tt.lang, tt.key); got != tt.want {
				t.Errorf("ColumnLabel(%q, %q) = %q, want %q", tt.lang, tt.key, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	if Normalize("zh") != "zh" {
		t.Error("supported locale should pass through")
	}
	if Normalize("de") != "ko" {
		t.Error("unsupported locale should normalize to ko")
	}
}
