package dataset

import (
	"os"
	"path/filepath"
	"testing"
)

const restaurantsCSV = `,name,City,rating,rating_count,cost,cuisine,Area
0,Biryani House,Mumbai,4.3,1200,300,Biryani,Andheri
1,Punjabi Tadka,Mumbai,4.1,540,450,North Indian,Bandra
2,Wok Express,mumbai,3.9,80.0,350,Chinese,
3,Chai Point,Shimla,3.8,40,150,Beverages,Unknown
`

// encodings are deliberately written in a different row order
const encodingsCSV = `,f_biryani,f_north,f_chinese,f_bev
2,0,0,1,0
0,True,False,0,0
3,0,0,0,1
1,0,1,0,0
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func testSource(t *testing.T, restaurants, encodings string) Source {
	t.Helper()
	return Source{
		RestaurantsPath: writeFile(t, "cleaned_data.csv", restaurants),
		EncodingsPath:   writeFile(t, "encoded_data.csv", encodings),
	}
}
