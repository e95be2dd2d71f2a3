package recommend

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/kailas-cloud/recodex/internal/dataset"
)

// Mumbai has five restaurants, two of them Biryani with identical encodings,
// so every Mumbai score equals the cosine against (1,0,0).
//
//	id  name          score
//	0   Paradise      1
//	1   Wok Express   0
//	2   Bawarchi      1
//	3   Fusion Point  0.7071
//	4   Cafe Mocha    0
//
// Shimla has no known areas. Pune serves Biryani but must never leak into Mumbai.
const restaurantsCSV = `,name,City,rating,rating_count,cost,cuisine,Area
0,Paradise,Mumbai,4.1,900,400,Biryani,Andheri
1,Wok Express,Mumbai,4.6,120,350,Chinese,Bandra
2,Bawarchi,Mumbai,3.9,300,300,biryani,
3,Fusion Point,Mumbai,4.8,50,600,Chinese,Colaba
4,Cafe Mocha,Mumbai,4.0,75,250,Cafe,Juhu
5,Himalayan Brew,Shimla,3.8,40,150,Cafe,Unknown
6,Mall Road Dhaba,Shimla,4.2,60,200,North Indian,
7,Pune Biryani,Pune,4.9,10,250,Biryani,Kothrud
`

const encodingsCSV = `,f0,f1,f2
0,1,0,0
1,0,1,0
2,1,0,0
3,1,1,0
4,0,0,1
5,0,0,1
6,1,0,1
7,1,0,0
`

func loadTables(t *testing.T) *dataset.Tables {
	t.Helper()
	dir := t.TempDir()
	src := dataset.Source{
		RestaurantsPath: filepath.Join(dir, "cleaned_data.csv"),
		EncodingsPath:   filepath.Join(dir, "encoded_data.csv"),
	}
	if err := os.WriteFile(src.RestaurantsPath, []byte(restaurantsCSV), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(src.EncodingsPath, []byte(encodingsCSV), 0o600); err != nil {
		t.Fatal(err)
	}
	tables, err := dataset.Load(context.Background(), src)
	if err != nil {
		t.Fatalf("load tables: %v", err)
	}
	return tables
}

type staticTables struct {
	tables *dataset.Tables
	err    error
	calls  int
}

func (s *staticTables) Tables(_ context.Context) (*dataset.Tables, error) {
	s.calls++
	return s.tables, s.err
}

var errUnavailable = errors.New("tables unavailable")
