package domain

// RegionKind различает источники определения региона
type RegionKind string

const (
	RegionKindGlobal    RegionKind = "global"
	RegionKindContinent RegionKind = "continent"
	RegionKindPreset    RegionKind = "preset"
	RegionKindCustom    RegionKind = "custom"
)

// Размеры окна выборки вокруг центроида страны в ячейках сетки.
// Австралийские штаты слишком большие для стандартного окна.
const (
	DefaultSampleWindow   = 5
	AustraliaSampleWindow = 50
)

// Region - именованная географическая единица агрегации
type Region struct {
	Name string      `json:"name"`
	Kind RegionKind  `json:"kind"`
	BBox BoundingBox `json:"bbox"`
}

// Continent - регион-континент со списком стран (для Австралии - штатов)
type Continent struct {
	Region        Region   `json:"region"`
	Countries     []string `json:"countries"`
	DivisionLabel string   `json:"division_label"`
	SampleWindow  int      `json:"-"`
}

// UsesMeanRule сообщает, категоризуются ли подразделения по среднему SPEI
// вместо доминирующей категории. Правило действует для австралийских штатов.
func (c *Continent) UsesMeanRule() bool {
	return c.SampleWindow >= AustraliaSampleWindow
}

// Centroid - координата центра страны или штата
type Centroid struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// CustomRegion строит пользовательский регион из явного bbox
func CustomRegion(bbox BoundingBox) Region {
	return Region{
		Name: "Custom",
		Kind: RegionKindCustom,
		BBox: bbox,
	}
}
