package i18n

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

type Translations struct {
	bundle   *i18n.Bundle
	localize *i18n.Localizer
}

func NewTranslations(defaultLang string) (*Translations, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	bundle.MustParseMessageFileBytes([]byte(defaultMessages), "default.en.toml")
	bundle.MustParseMessageFileBytes([]byte(russianMessages), "active.ru.toml")

	trans := &Translations{bundle: bundle}
	if err := trans.SetLanguage(defaultLang); err != nil {
		return nil, err
	}

	return trans, nil
}

func (t *Translations) SetLanguage(lang string) error {
	for _, tag := range t.bundle.LanguageTags() {
		if tag.String() == lang {
			t.localize = i18n.NewLocalizer(t.bundle, lang)
			return nil
		}
	}
	return fmt.Errorf("language '%s' not supported", lang)
}

func (t *Translations) GetMessage(messageID string, count int, templateData map[string]interface{}) string {
	cfg := &i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID: messageID,
		},
		TemplateData: templateData,
	}

	// report messages carry no plural forms; only resolve plurals when a
	// real count is supplied
	if count != 0 {
		cfg.PluralCount = count
	}

	localized, err := t.localize.Localize(cfg)
	if err != nil {
		return "Translation missing: " + messageID
	}
	return localized
}

var defaultMessages = `
	[report.min_flight_times_header]
	other = "Minimum flight time per carrier:"

	[report.carrier_line]
	other = "{{.Carrier}}: {{.Duration}}"

	[report.no_duration_data]
	other = "No flight duration data."

	[report.mean_price]
	other = "Average price: {{.Value}}"

	[report.median_price]
	other = "Median price: {{.Value}}"

	[report.price_difference]
	other = "Difference between average price and median: {{.Value}}"

	[report.prices_unavailable]
	other = "Prices are unavailable in the data."

	[report.no_data]
	other = "No flight data in the file."
	`

var russianMessages = `
	[report.min_flight_times_header]
	other = "Минимальное время полета для каждого перевозчика:"

	[report.carrier_line]
	other = "{{.Carrier}}: {{.Hours}} часов {{.Minutes}} минут"

	[report.no_duration_data]
	other = "Нет данных о времени полета."

	[report.mean_price]
	other = "Средняя цена: {{.Value}}"

	[report.median_price]
	other = "Медиана цены: {{.Value}}"

	[report.price_difference]
	other = "Разница между средней ценой и медианой: {{.Value}}"

	[report.prices_unavailable]
	other = "Цены не доступны в данных."

	[report.no_data]
	other = "Нет данных о рейсах в файле."
	`
