package colormap

import "math"

// seg groups a flat list of (x, y0, y1) triples into segments.
func seg(v ...float64) []Segment {
	segs := make([]Segment, 0, len(v)/3)
	for i := 0; i+2 < len(v); i += 3 {
		segs = append(segs, Segment{X: v[i], Y0: v[i+1], Y1: v[i+2]})
	}
	return segs
}

// grey builds segment data with identical channels.
func grey(v ...float64) SegmentData {
	s := seg(v...)
	return SegmentData{Red: s, Green: s, Blue: s}
}

var segmentedData = map[string]SegmentData{
	"binary":    grey(0, 1, 1, 1, 0, 0),
	"gist_yarg": grey(0, 1, 1, 1, 0, 0),
	"gray":      grey(0, 0, 0, 1, 1, 1),
	"gist_gray": grey(0, 0, 0, 1, 1, 1),
	"autumn": {
		Red:   seg(0, 1, 1, 1, 1, 1),
		Green: seg(0, 0, 0, 1, 1, 1),
		Blue:  seg(0, 0, 0, 1, 0, 0),
	},
	"bone": {
		Red:   seg(0, 0, 0, 0.746032, 0.652778, 0.652778, 1, 1, 1),
		Green: seg(0, 0, 0, 0.365079, 0.319444, 0.319444, 0.746032, 0.777778, 0.777778, 1, 1, 1),
		Blue:  seg(0, 0, 0, 0.365079, 0.444444, 0.444444, 1, 1, 1),
	},
	"cool": {
		Red:   seg(0, 0, 0, 1, 1, 1),
		Green: seg(0, 1, 1, 1, 0, 0),
		Blue:  seg(0, 1, 1, 1, 1, 1),
	},
	"copper": {
		Red:   seg(0, 0, 0, 0.809524, 1, 1, 1, 1, 1),
		Green: seg(0, 0, 0, 1, 0.7812, 0.7812),
		Blue:  seg(0, 0, 0, 1, 0.4975, 0.4975),
	},
	"hot": {
		Red:   seg(0, 0.0416, 0.0416, 0.365079, 1, 1, 1, 1, 1),
		Green: seg(0, 0, 0, 0.365079, 0, 0, 0.746032, 1, 1, 1, 1, 1),
		Blue:  seg(0, 0, 0, 0.746032, 0, 0, 1, 1, 1),
	},
	"hsv": {
		Red: seg(
			0, 1, 1,
			0.158730, 1, 1,
			0.174603, 0.968750, 0.968750,
			0.333333, 0.031250, 0.031250,
			0.349206, 0, 0,
			0.666667, 0, 0,
			0.682540, 0.031250, 0.031250,
			0.841270, 0.968750, 0.968750,
			0.857143, 1, 1,
			1, 1, 1,
		),
		Green: seg(
			0, 0, 0,
			0.158730, 0.937500, 0.937500,
			0.174603, 1, 1,
			0.507937, 1, 1,
			0.666667, 0.062500, 0.062500,
			0.682540, 0, 0,
			1, 0, 0,
		),
		Blue: seg(
			0, 0, 0,
			0.333333, 0, 0,
			0.349206, 0.062500, 0.062500,
			0.507937, 1, 1,
			0.841270, 1, 1,
			0.857143, 0.937500, 0.937500,
			1, 0.09375, 0.09375,
		),
	},
	"jet": {
		Red:   seg(0, 0, 0, 0.35, 0, 0, 0.66, 1, 1, 0.89, 1, 1, 1, 0.5, 0.5),
		Green: seg(0, 0, 0, 0.125, 0, 0, 0.375, 1, 1, 0.64, 1, 1, 0.91, 0, 0, 1, 0, 0),
		Blue:  seg(0, 0.5, 0.5, 0.11, 1, 1, 0.34, 1, 1, 0.65, 0, 0, 1, 0, 0),
	},
	"spring": {
		Red:   seg(0, 1, 1, 1, 1, 1),
		Green: seg(0, 0, 0, 1, 1, 1),
		Blue:  seg(0, 1, 1, 1, 0, 0),
	},
	"summer": {
		Red:   seg(0, 0, 0, 1, 1, 1),
		Green: seg(0, 0.5, 0.5, 1, 1, 1),
		Blue:  seg(0, 0.4, 0.4, 1, 0.4, 0.4),
	},
	"winter": {
		Red:   seg(0, 0, 0, 1, 0, 0),
		Green: seg(0, 0, 0, 1, 1, 1),
		Blue:  seg(0, 1, 1, 1, 0.5, 0.5),
	},
	"CMRmap": {
		Red:   seg(0, 0, 0, 0.125, 0.15, 0.15, 0.25, 0.30, 0.30, 0.375, 0.60, 0.60, 0.5, 1, 1, 0.625, 0.90, 0.90, 0.75, 0.90, 0.90, 0.875, 0.90, 0.90, 1, 1, 1),
		Green: seg(0, 0, 0, 0.125, 0.15, 0.15, 0.25, 0.15, 0.15, 0.375, 0.20, 0.20, 0.5, 0.25, 0.25, 0.625, 0.50, 0.50, 0.75, 0.75, 0.75, 0.875, 0.90, 0.90, 1, 1, 1),
		Blue:  seg(0, 0, 0, 0.125, 0.50, 0.50, 0.25, 0.75, 0.75, 0.375, 0.50, 0.50, 0.5, 0.15, 0.15, 0.625, 0, 0, 0.75, 0.10, 0.10, 0.875, 0.50, 0.50, 1, 1, 1),
	},
	"gist_stern": {
		Red:   seg(0, 0, 0, 0.0547, 1, 1, 0.250, 0.027, 0.250, 1, 1, 1),
		Green: seg(0, 0, 0, 1, 1, 1),
		Blue:  seg(0, 0, 0, 0.5, 1, 1, 0.735, 0, 0, 1, 1, 1),
	},
	"pink": pinkData(),
	"coolwarm": {
		Red: even32(
			0.2298057, 0.26623388, 0.30386891, 0.342804478, 0.38301334, 0.424369608,
			0.46666708, 0.509635204, 0.552953156, 0.596262162, 0.639176211, 0.681291281,
			0.722193294, 0.761464949, 0.798691636, 0.833466556, 0.865395197, 0.897787179,
			0.924127593, 0.944468518, 0.958852946, 0.96732803, 0.969954137, 0.966811177,
			0.958003065, 0.943660866, 0.923944917, 0.89904617, 0.869186849, 0.834620542,
			0.795631745, 0.752534934, 0.705673158,
		),
		Green: even32(
			0.298717966, 0.353094838, 0.406535296, 0.458757618, 0.50941904, 0.558148092,
			0.604562568, 0.648280772, 0.688929332, 0.726149107, 0.759599947, 0.788964712,
			0.813952739, 0.834302879, 0.849786142, 0.860207984, 0.86541021, 0.848937047,
			0.827384882, 0.800927443, 0.769767752, 0.734132809, 0.694266682, 0.650421156,
			0.602842431, 0.551750968, 0.49730856, 0.439559467, 0.378313092, 0.312874446,
			0.24128379, 0.157246067, 0.01555616,
		),
		Blue: even32(
			0.753683153, 0.801466763, 0.84495867, 0.883725899, 0.917387822, 0.945619588,
			0.968154911, 0.98478814, 0.995375608, 0.999836203, 0.998151185, 0.990363227,
			0.976574709, 0.956945269, 0.931688648, 0.901068838, 0.865395561, 0.820880546,
			0.774508472, 0.726736146, 0.678007945, 0.628751763, 0.579375448, 0.530263762,
			0.481775914, 0.434243684, 0.387970225, 0.343229596, 0.300267182, 0.259301199,
			0.220525627, 0.184115123, 0.150232812,
		),
	},
	"gist_earth": {
		Red: seg(
			0, 0, 0,
			0.2824, 0.1882, 0.1882,
			0.4588, 0.2714, 0.2714,
			0.5490, 0.4719, 0.4719,
			0.6980, 0.7176, 0.7176,
			0.7882, 0.7553, 0.7553,
			1, 0.9922, 0.9922,
		),
		Green: seg(
			0, 0, 0,
			0.0275, 0, 0,
			0.1098, 0.1893, 0.1893,
			0.1647, 0.3035, 0.3035,
			0.2078, 0.3841, 0.3841,
			0.2824, 0.5020, 0.5020,
			0.5216, 0.6397, 0.6397,
			0.6980, 0.7171, 0.7171,
			0.7882, 0.6392, 0.6392,
			0.7922, 0.6413, 0.6413,
			0.8000, 0.6447, 0.6447,
			0.8078, 0.6481, 0.6481,
			0.8157, 0.6549, 0.6549,
			0.8667, 0.6991, 0.6991,
			0.8745, 0.7103, 0.7103,
			0.8824, 0.7216, 0.7216,
			0.8902, 0.7323, 0.7323,
			0.8980, 0.7430, 0.7430,
			0.9412, 0.8275, 0.8275,
			0.9569, 0.8635, 0.8635,
			0.9647, 0.8816, 0.8816,
			0.9961, 0.9733, 0.9733,
			1, 0.9843, 0.9843,
		),
		Blue: seg(
			0, 0, 0,
			0.0039, 0.1684, 0.1684,
			0.0078, 0.2212, 0.2212,
			0.0275, 0.4329, 0.4329,
			0.0314, 0.4549, 0.4549,
			0.2824, 0.5004, 0.5004,
			0.4667, 0.2748, 0.2748,
			0.5451, 0.3205, 0.3205,
			0.7843, 0.3961, 0.3961,
			0.8941, 0.6651, 0.6651,
			1, 0.9843, 0.9843,
		),
	},
	"nipy_spectral": {
		Red: even20(
			0, 0.4667, 0.5333, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0.7333, 0.9333, 1, 1, 1, 0.8667, 0.80, 0.80,
		),
		Green: even20(
			0, 0, 0, 0, 0, 0.4667, 0.6000, 0.6667, 0.6667, 0.6000, 0.7333,
			0.8667, 1, 1, 0.9333, 0.8000, 0.6000, 0, 0, 0, 0.80,
		),
		Blue: even20(
			0, 0.5333, 0.6000, 0.6667, 0.8667, 0.8667, 0.8667, 0.6667, 0.5333, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0.80,
		),
	},
	"gist_ncar": {
		Red: seg(
			0, 0, 0,
			0.3098, 0, 0,
			0.3725, 0.3993, 0.3993,
			0.4235, 0.5003, 0.5003,
			0.5333, 1, 1,
			0.7922, 1, 1,
			0.8471, 0.6218, 0.6218,
			0.8980, 0.9235, 0.9235,
			1, 0.9961, 0.9961,
		),
		Green: seg(
			0, 0, 0,
			0.0510, 0.3722, 0.3722,
			0.1059, 0, 0,
			0.1569, 0.7202, 0.7202,
			0.1608, 0.7537, 0.7537,
			0.1647, 0.7752, 0.7752,
			0.2157, 1, 1,
			0.2588, 0.9804, 0.9804,
			0.2706, 0.9804, 0.9804,
			0.3176, 1, 1,
			0.3686, 0.8081, 0.8081,
			0.4275, 1, 1,
			0.5216, 1, 1,
			0.6314, 0.7292, 0.7292,
			0.6863, 0.2796, 0.2796,
			0.7451, 0, 0,
			0.7922, 0, 0,
			0.8431, 0.1753, 0.1753,
			0.8980, 0.5000, 0.5000,
			1, 0.9725, 0.9725,
		),
		Blue: seg(
			0, 0.5020, 0.5020,
			0.0510, 0.0222, 0.0222,
			0.1098, 1, 1,
			0.2039, 1, 1,
			0.2627, 0.6145, 0.6145,
			0.3216, 0, 0,
			0.4157, 0, 0,
			0.4745, 0.2342, 0.2342,
			0.5333, 0, 0,
			0.5804, 0, 0,
			0.6314, 0.0549, 0.0549,
			0.6902, 0, 0,
			0.7373, 0, 0,
			0.7922, 0.9738, 0.9738,
			0.8000, 1, 1,
			0.8431, 1, 1,
			0.8980, 0.9341, 0.9341,
			1, 0.9961, 0.9961,
		),
	},
}

// evenSeg builds continuous segments from values at n+1 evenly spaced anchors.
func evenSeg(n int, v ...float64) []Segment {
	segs := make([]Segment, len(v))
	for i, y := range v {
		segs[i] = Segment{X: float64(i) / float64(n), Y0: y, Y1: y}
	}
	return segs
}

func even20(v ...float64) []Segment { return evenSeg(20, v...) }
func even32(v ...float64) []Segment { return evenSeg(32, v...) }

// pinkData returns the 64-anchor pink table, sqrt((2*gray + hot) / 3) over
// the 64-entry hot ramp, rounded to six decimals.
func pinkData() SegmentData {
	const n = 64
	var red, green, blue []Segment
	for i := 1; i <= n; i++ {
		x := float64(i-1) / (n - 1)
		r := math.Min(float64(i)/24, 1)
		g := math.Min(math.Max(float64(i-24)/24, 0), 1)
		b := math.Max(float64(i-48), 0) / 16

		pink := func(h float64) float64 {
			return round6(math.Sqrt((2*x + h) / 3))
		}
		red = append(red, Segment{X: x, Y0: pink(r), Y1: pink(r)})
		green = append(green, Segment{X: x, Y0: pink(g), Y1: pink(g)})
		blue = append(blue, Segment{X: x, Y0: pink(b), Y1: pink(b)})
	}
	return SegmentData{Red: red, Green: green, Blue: blue}
}

// stopData holds colormaps defined as colour stops at explicit positions.
var stopData = map[string][]Stop{
	"terrain": {
		{0.00, RGB{0.2, 0.2, 0.6}},
		{0.15, RGB{0.0, 0.6, 1.0}},
		{0.25, RGB{0.0, 0.8, 0.4}},
		{0.50, RGB{1.0, 1.0, 0.6}},
		{0.75, RGB{0.5, 0.36, 0.33}},
		{1.00, RGB{1.0, 1.0, 1.0}},
	},
	"gist_rainbow": {
		{0.000, RGB{1.00, 0.00, 0.16}},
		{0.030, RGB{1.00, 0.00, 0.00}},
		{0.215, RGB{1.00, 1.00, 0.00}},
		{0.400, RGB{0.00, 1.00, 0.00}},
		{0.586, RGB{0.00, 1.00, 1.00}},
		{0.770, RGB{0.00, 0.00, 1.00}},
		{0.954, RGB{1.00, 0.00, 1.00}},
		{1.000, RGB{1.00, 0.00, 0.75}},
	},
}

// evenData holds colormaps defined as evenly spaced colours.
var evenData = map[string][]RGB{
	"bwr":     {{0, 0, 1}, {1, 1, 1}, {1, 0, 0}},
	"brg":     {{0, 0, 1}, {1, 0, 0}, {0, 1, 0}},
	"seismic": {{0, 0, 0.3}, {0, 0, 1}, {1, 1, 1}, {1, 0, 0}, {0.5, 0, 0}},
}

// evenHexData holds evenly spaced colour lists given as hex strings. The
// ColorBrewer schemes are listed light to dark (sequential) or from the low
// end to the high end (diverging).
var evenHexData = map[string][]string{
	"Wistia": {"#e4ff7a", "#ffe81a", "#ffbd00", "#ffa000", "#fc7f00"},

	"Blues":   {"#f7fbff", "#deebf7", "#c6dbef", "#9ecae1", "#6baed6", "#4292c6", "#2171b5", "#08519c", "#08306b"},
	"BuGn":    {"#f7fcfd", "#e5f5f9", "#ccece6", "#99d8c9", "#66c2a4", "#41ae76", "#238b45", "#006d2c", "#00441b"},
	"BuPu":    {"#f7fcfd", "#e0ecf4", "#bfd3e6", "#9ebcda", "#8c96c6", "#8c6bb1", "#88419d", "#810f7c", "#4d004b"},
	"GnBu":    {"#f7fcf0", "#e0f3db", "#ccebc5", "#a8ddb5", "#7bccc4", "#4eb3d3", "#2b8cbe", "#0868ac", "#084081"},
	"Greens":  {"#f7fcf5", "#e5f5e0", "#c7e9c0", "#a1d99b", "#74c476", "#41ab5d", "#238b45", "#006d2c", "#00441b"},
	"Greys":   {"#ffffff", "#f0f0f0", "#d9d9d9", "#bdbdbd", "#969696", "#737373", "#525252", "#252525", "#000000"},
	"Oranges": {"#fff5eb", "#fee6ce", "#fdd0a2", "#fdae6b", "#fd8d3c", "#f16913", "#d94801", "#a63603", "#7f2704"},
	"OrRd":    {"#fff7ec", "#fee8c8", "#fdd49e", "#fdbb84", "#fc8d59", "#ef6548", "#d7301f", "#b30000", "#7f0000"},
	"PuBu":    {"#fff7fb", "#ece7f2", "#d0d1e6", "#a6bddb", "#74a9cf", "#3690c0", "#0570b0", "#045a8d", "#023858"},
	"PuBuGn":  {"#fff7fb", "#ece2f0", "#d0d1e6", "#a6bddb", "#67a9cf", "#3690c0", "#02818a", "#016c59", "#014636"},
	"PuRd":    {"#f7f4f9", "#e7e1ef", "#d4b9da", "#c994c7", "#df65b0", "#e7298a", "#ce1256", "#980043", "#67001f"},
	"Purples": {"#fcfbfd", "#efedf5", "#dadaeb", "#bcbddc", "#9e9ac8", "#807dba", "#6a51a3", "#54278f", "#3f007d"},
	"RdPu":    {"#fff7f3", "#fde0dd", "#fcc5c0", "#fa9fb5", "#f768a1", "#dd3497", "#ae017e", "#7a0177", "#49006a"},
	"Reds":    {"#fff5f0", "#fee0d2", "#fcbba1", "#fc9272", "#fb6a4a", "#ef3b2c", "#cb181d", "#a50f15", "#67000d"},
	"YlGn":    {"#ffffe5", "#f7fcb9", "#d9f0a3", "#addd8e", "#78c679", "#41ab5d", "#238443", "#006837", "#004529"},
	"YlGnBu":  {"#ffffd9", "#edf8b1", "#c7e9b4", "#7fcdbb", "#41b6c4", "#1d91c0", "#225ea8", "#253494", "#081d58"},
	"YlOrBr":  {"#ffffe5", "#fff7bc", "#fee391", "#fec44f", "#fe9929", "#ec7014", "#cc4c02", "#993404", "#662506"},
	"YlOrRd":  {"#ffffcc", "#ffeda0", "#fed976", "#feb24c", "#fd8d3c", "#fc4e2a", "#e31a1c", "#bd0026", "#800026"},

	"BrBG":     {"#543005", "#8c510a", "#bf812d", "#dfc27d", "#f6e8c3", "#f5f5f5", "#c7eae5", "#80cdc1", "#35978f", "#01665e", "#003c30"},
	"PiYG":     {"#8e0152", "#c51b7d", "#de77ae", "#f1b6da", "#fde0ef", "#f7f7f7", "#e6f5d0", "#b8e186", "#7fbc41", "#4d9221", "#276419"},
	"PRGn":     {"#40004b", "#762a83", "#9970ab", "#c2a5cf", "#e7d4e8", "#f7f7f7", "#d9f0d3", "#a6dba0", "#5aae61", "#1b7837", "#00441b"},
	"PuOr":     {"#7f3b08", "#b35806", "#e08214", "#fdb863", "#fee0b6", "#f7f7f7", "#d8daeb", "#b2abd2", "#8073ac", "#542788", "#2d004b"},
	"RdBu":     {"#67001f", "#b2182b", "#d6604d", "#f4a582", "#fddbc7", "#f7f7f7", "#d1e5f0", "#92c5de", "#4393c3", "#2166ac", "#053061"},
	"RdGy":     {"#67001f", "#b2182b", "#d6604d", "#f4a582", "#fddbc7", "#ffffff", "#e0e0e0", "#bababa", "#878787", "#4d4d4d", "#1a1a1a"},
	"RdYlBu":   {"#a50026", "#d73027", "#f46d43", "#fdae61", "#fee090", "#ffffbf", "#e0f3f8", "#abd9e9", "#74add1", "#4575b4", "#313695"},
	"RdYlGn":   {"#a50026", "#d73027", "#f46d43", "#fdae61", "#fee08b", "#ffffbf", "#d9ef8b", "#a6d96a", "#66bd63", "#1a9850", "#006837"},
	"Spectral": {"#9e0142", "#d53e4f", "#f46d43", "#fdae61", "#fee08b", "#ffffbf", "#e6f598", "#abdda4", "#66c2a5", "#3288bd", "#5e4fa2"},
}

// qualitativeData holds listed colormaps whose entries are used as-is.
var qualitativeData = map[string][]string{
	"Accent":  {"#7fc97f", "#beaed4", "#fdc086", "#ffff99", "#386cb0", "#f0027f", "#bf5b17", "#666666"},
	"Dark2":   {"#1b9e77", "#d95f02", "#7570b3", "#e7298a", "#66a61e", "#e6ab02", "#a6761d", "#666666"},
	"Paired":  {"#a6cee3", "#1f78b4", "#b2df8a", "#33a02c", "#fb9a99", "#e31a1c", "#fdbf6f", "#ff7f00", "#cab2d6", "#6a3d9a", "#ffff99", "#b15928"},
	"Pastel1": {"#fbb4ae", "#b3cde3", "#ccebc5", "#decbe4", "#fed9a6", "#ffffcc", "#e5d8bd", "#fddaec", "#f2f2f2"},
	"Pastel2": {"#b3e2cd", "#fdcdac", "#cbd5e8", "#f4cae4", "#e6f5c9", "#fff2ae", "#f1e2cc", "#cccccc"},
	"Set1":    {"#e41a1c", "#377eb8", "#4daf4a", "#984ea3", "#ff7f00", "#ffff33", "#a65628", "#f781bf", "#999999"},
	"Set2":    {"#66c2a5", "#fc8d62", "#8da0cb", "#e78ac3", "#a6d854", "#ffd92f", "#e5c494", "#b3b3b3"},
	"Set3":    {"#8dd3c7", "#ffffb3", "#bebada", "#fb8072", "#80b1d3", "#fdb462", "#b3de69", "#fccde5", "#d9d9d9", "#bc80bd", "#ccebc5", "#ffed6f"},
	"tab10":   {"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd", "#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf"},
	"tab20": {
		"#1f77b4", "#aec7e8", "#ff7f0e", "#ffbb78", "#2ca02c", "#98df8a", "#d62728", "#ff9896", "#9467bd", "#c5b0d5",
		"#8c564b", "#c49c94", "#e377c2", "#f7b6d2", "#7f7f7f", "#c7c7c7", "#bcbd22", "#dbdb8d", "#17becf", "#9edae5",
	},
	"tab20b": {
		"#393b79", "#5254a3", "#6b6ecf", "#9c9ede", "#637939", "#8ca252", "#b5cf6b", "#cedb9c", "#8c6d31", "#bd9e39",
		"#e7ba52", "#e7cb94", "#843c39", "#ad494a", "#d6616b", "#e7969c", "#7b4173", "#a55194", "#ce6dbd", "#de9ed6",
	},
	"tab20c": {
		"#3182bd", "#6baed6", "#9ecae1", "#c6dbef", "#e6550d", "#fd8d3c", "#fdae6b", "#fdd0a2", "#31a354", "#74c476",
		"#a1d99b", "#c7e9c0", "#756bb1", "#9e9ac8", "#bcbddc", "#dadaeb", "#636363", "#969696", "#bdbdbd", "#d9d9d9",
	},
}

// gnuplotFuncs are the gnuplot palette formulae, indexed by gnuplot's
// rgbformulae numbers.
var gnuplotFuncs = map[int]ChannelFunc{
	0:  func(x float64) float64 { return 0 },
	1:  func(x float64) float64 { return 0.5 },
	2:  func(x float64) float64 { return 1 },
	3:  func(x float64) float64 { return x },
	4:  func(x float64) float64 { return x * x },
	5:  func(x float64) float64 { return x * x * x },
	6:  func(x float64) float64 { return x * x * x * x },
	7:  math.Sqrt,
	8:  func(x float64) float64 { return math.Sqrt(math.Sqrt(x)) },
	9:  func(x float64) float64 { return math.Sin(x * math.Pi / 2) },
	10: func(x float64) float64 { return math.Cos(x * math.Pi / 2) },
	11: func(x float64) float64 { return math.Abs(x - 0.5) },
	12: func(x float64) float64 { return (2*x - 1) * (2*x - 1) },
	13: func(x float64) float64 { return math.Sin(x * math.Pi) },
	14: func(x float64) float64 { return math.Abs(math.Cos(x * math.Pi)) },
	15: func(x float64) float64 { return math.Sin(x * 2 * math.Pi) },
	16: func(x float64) float64 { return math.Cos(x * 2 * math.Pi) },
	17: func(x float64) float64 { return math.Abs(math.Sin(x * 2 * math.Pi)) },
	18: func(x float64) float64 { return math.Abs(math.Cos(x * 2 * math.Pi)) },
	19: func(x float64) float64 { return math.Abs(math.Sin(x * 4 * math.Pi)) },
	20: func(x float64) float64 { return math.Abs(math.Cos(x * 4 * math.Pi)) },
	21: func(x float64) float64 { return 3 * x },
	22: func(x float64) float64 { return 3*x - 1 },
	23: func(x float64) float64 { return 3*x - 2 },
	24: func(x float64) float64 { return math.Abs(3*x - 1) },
	25: func(x float64) float64 { return math.Abs(3*x - 2) },
	26: func(x float64) float64 { return (3*x - 1) / 2 },
	27: func(x float64) float64 { return (3*x - 2) / 2 },
	28: func(x float64) float64 { return math.Abs((3*x - 1) / 2) },
	29: func(x float64) float64 { return math.Abs((3*x - 2) / 2) },
	30: func(x float64) float64 { return x/0.32 - 0.78125 },
	31: func(x float64) float64 { return 2*x - 0.84 },
	32: gnuplot32,
	33: func(x float64) float64 { return math.Abs(2*x - 0.5) },
	34: func(x float64) float64 { return 2 * x },
	35: func(x float64) float64 { return 2*x - 0.5 },
	36: func(x float64) float64 { return 2*x - 1 },
}

func gnuplot32(x float64) float64 {
	switch {
	case x < 0.25:
		return 4 * x
	case x < 0.92:
		return -2*x + 1.84
	default:
		return x/0.08 - 11.5
	}
}

// rgbFormulae names colormaps built from three gnuplot formulae.
var rgbFormulae = map[string][3]int{
	"gnuplot":  {7, 5, 15},
	"gnuplot2": {30, 31, 32},
	"ocean":    {23, 28, 3},
	"afmhot":   {34, 35, 36},
	"rainbow":  {33, 13, 10},
}

// cubehelix returns a channel of Green's cubehelix scheme.
func cubehelix(gamma, s, r, h, p0, p1 float64) ChannelFunc {
	return func(x float64) float64 {
		xg := math.Pow(x, gamma)
		a := h * xg * (1 - xg) / 2
		phi := 2 * math.Pi * (s/3 + r*x)
		return xg + a*(p0*math.Cos(phi)+p1*math.Sin(phi))
	}
}

// functionalData holds colormaps defined directly by channel functions.
var functionalData = map[string][3]ChannelFunc{
	"gist_heat": {
		func(x float64) float64 { return 1.5 * x },
		func(x float64) float64 { return 2*x - 1 },
		func(x float64) float64 { return 4*x - 3 },
	},
	"flag": {
		func(x float64) float64 { return 0.75*math.Sin((x*31.5+0.25)*math.Pi) + 0.5 },
		func(x float64) float64 { return math.Sin(x * 31.5 * math.Pi) },
		func(x float64) float64 { return 0.75*math.Sin((x*31.5-0.25)*math.Pi) + 0.5 },
	},
	"prism": {
		func(x float64) float64 { return 0.75*math.Sin((x*20.9+0.25)*math.Pi) + 0.67 },
		func(x float64) float64 { return 0.75*math.Sin((x*20.9-0.25)*math.Pi) + 0.33 },
		func(x float64) float64 { return -1.1 * math.Sin((x*20.9)*math.Pi) },
	},
	"cubehelix": {
		cubehelix(1.0, 0.5, -1.5, 1.0, -0.14861, 1.78277),
		cubehelix(1.0, 0.5, -1.5, 1.0, -0.29227, -0.90649),
		cubehelix(1.0, 0.5, -1.5, 1.0, 1.97294, 0.0),
	},
}
