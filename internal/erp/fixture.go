package erp

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/rutero/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// fixtureFile is the YAML layout of an ERP snapshot:
//
//	vendors:
//	  - code: V1
//	    visits:
//	      - client: A
//	        name: Almacen Central
//	        days: [monday, jueves]
//	        rank: 1
//	    sales:
//	      A: "1520.50"
type fixtureFile struct {
	Vendors []fixtureVendor `yaml:"vendors"`
}

type fixtureVendor struct {
	Code   string            `yaml:"code"`
	Visits []fixtureVisit    `yaml:"visits"`
	Sales  map[string]string `yaml:"sales"`
}

type fixtureVisit struct {
	Client  string   `yaml:"client"`
	Name    string   `yaml:"name"`
	Address string   `yaml:"address"`
	Lat     *float64 `yaml:"lat"`
	Lng     *float64 `yaml:"lng"`
	Rank    *int     `yaml:"rank"`
	Days    []string `yaml:"days"`
}

// LoadFixture reads a YAML ERP snapshot from path into a MemorySource.
func LoadFixture(path string) (*MemorySource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading erp fixture: %w", err)
	}
	src, err := ParseFixture(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("erp fixture %s: %w", path, err)
	}
	return src, nil
}

// ParseFixture decodes a YAML ERP snapshot. Unknown keys are rejected so a
// typo in a day list does not silently drop a client from the route.
func ParseFixture(r io.Reader) (*MemorySource, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f fixtureFile
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}

	src := NewMemorySource()
	for vi, v := range f.Vendors {
		if v.Code == "" {
			return nil, fmt.Errorf("vendors[%d]: code is required", vi)
		}
		src.AddVendor(v.Code)
		for ri, visit := range v.Visits {
			row, err := visit.toRow(v.Code)
			if err != nil {
				return nil, fmt.Errorf("vendor %s visits[%d]: %w", v.Code, ri, err)
			}
			src.AddRows(row)
		}
		for client, raw := range v.Sales {
			amt, err := decimal.NewFromString(raw)
			if err != nil {
				return nil, fmt.Errorf("vendor %s sales[%s]: %w", v.Code, client, err)
			}
			src.AddSale(v.Code, client, amt)
		}
	}
	return src, nil
}

func (fv fixtureVisit) toRow(vendor string) (domain.VisitRow, error) {
	if fv.Client == "" {
		return domain.VisitRow{}, fmt.Errorf("client is required")
	}
	days := make([]domain.Weekday, 0, len(fv.Days))
	for _, d := range fv.Days {
		w, err := domain.ParseWeekday(d)
		if err != nil {
			return domain.VisitRow{}, err
		}
		days = append(days, w)
	}
	return domain.VisitRow{
		VendorCode: vendor,
		ClientCode: fv.Client,
		ClientName: fv.Name,
		Address:    fv.Address,
		Latitude:   fv.Lat,
		Longitude:  fv.Lng,
		Rank:       fv.Rank,
		Days:       domain.NewDaySet(days...),
	}, nil
}
