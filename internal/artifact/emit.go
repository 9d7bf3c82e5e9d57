package artifact

import (
	"bytes"
	"encoding/json"
	"html/template"
	"os"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

type templateData struct {
	Title            string
	CenterLat        float64
	CenterLng        float64
	Features         template.JS
	Records          template.JS
	Thresholds       template.JS
	DomainIndicators template.JS
	IndicatorNames   template.JS
	Jurisdictions    template.JS
	Labels           template.JS
}

// Render produces the complete HTML document for a payload.
func Render(p *Payload) ([]byte, error) {
	data := templateData{
		Title:     p.Title,
		CenterLat: p.CenterLat,
		CenterLng: p.CenterLng,
		Features:  template.JS(p.FeatureJSON),
	}

	for _, blob := range []struct {
		dst *template.JS
		src any
	}{
		{&data.Records, p.Records},
		{&data.Thresholds, p.Thresholds},
		{&data.DomainIndicators, p.DomainIndicators},
		{&data.IndicatorNames, p.IndicatorNames},
		{&data.Jurisdictions, p.Jurisdictions},
		{&data.Labels, p.Labels},
	} {
		encoded, err := json.Marshal(blob.src)
		if err != nil {
			return nil, eris.Wrap(err, "artifact: marshal payload section")
		}
		*blob.dst = template.JS(encoded)
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return nil, eris.Wrap(err, "artifact: execute template")
	}
	return buf.Bytes(), nil
}

// WriteHTML renders the payload and writes the self-contained artifact file.
func WriteHTML(path string, p *Payload) error {
	html, err := Render(p)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, html, 0o644); err != nil {
		return eris.Wrapf(err, "artifact: write %s", path)
	}
	zap.L().Info("artifact written",
		zap.String("path", path),
		zap.Int("bytes", len(html)),
		zap.Int("areas", len(p.Records)),
	)
	return nil
}
