// animation_catalog.go - Built-in animation programs

package main

// The instruction tables below are the full built-in animation set. Matrix
// rows carry twelve deltas, accent rows three. Durations are milliseconds.
// The last entry is reserved: it is the all-off program selected right
// before power down and is excluded from button cycling.

var retroVersion = Animation{
	Name: "RetroVersion",
	Matrix: []Instruction{
		{133, []int8{15, 0, 15, 0, 0, 15, 15, 0, 15, 0, 0, 15}, OpLoad, 0},
		{133, []int8{0, 15, 0, 15, 15, 0, 0, 15, 0, 15, 15, 0}, OpLoad, 0},
		{133, []int8{15, 0, 0, 0, 0, 0, 15, 0, 0, 0, 0, 0}, OpLoad, 0},
		{133, []int8{0, 15, 0, 15, 15, 0, 0, 15, 0, 15, 15, 0}, OpLoad, 0},
		{133, []int8{15, 0, 0, 0, 0, 0, 15, 0, 0, 0, 0, 0}, OpLoad, 0},
		{133, []int8{0, 0, 0, 15, 0, 0, 0, 0, 0, 15, 0, 0}, OpLoad, 0},
		{133, []int8{15, 0, 15, 0, 0, 15, 15, 0, 0, 15, 0, 15}, OpLoad, 0},
		{133, []int8{0, 0, 0, 15, 0, 0, 0, 0, 0, 15, 0, 0}, OpLoad, 0},
	},
	Accent: []Instruction{
		{133, []int8{15, 0, 0}, OpLoad, 0},
		{665, []int8{0, 0, 0}, OpLoad, 0},
		{133, []int8{15, 0, 0}, OpLoad, 0},
		{133, []int8{0, 0, 0}, OpLoad, 0},
	},
}

var softFlashing = Animation{
	Name: "SoftFlashing",
	Matrix: []Instruction{
		{125, []int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, OpLoad, 0},
		{125, []int8{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}, OpAdd | OpRepeat, 14},
		{125, []int8{15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15}, OpLoad, 0},
		{125, []int8{-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1}, OpAdd | OpRepeat, 14},
	},
	Accent: []Instruction{
		{125, []int8{0, 0, 0}, OpLoad, 0},
		{125, []int8{1, 0, 0}, OpAdd | OpRepeat, 14},
		{125, []int8{15, 0, 0}, OpLoad, 0},
		{125, []int8{-1, 0, 0}, OpAdd | OpRepeat, 14},
	},
}

var disco = Animation{
	Name: "Disco",
	Matrix: []Instruction{
		{40, []int8{0, 15, 0, 15, 0, 15, 0, 15, 0, 15, 0, 15}, OpLoad, 0},
		{40, []int8{1, 2, 1, 2, 1, 2, 1, 2, 1, 2, 1, 2}, OpDivide | OpRepeat, 3},
		{100, []int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, OpLoad, 0},
		{40, []int8{15, 0, 15, 0, 15, 0, 15, 0, 15, 0, 15, 0}, OpLoad, 0},
		{40, []int8{2, 1, 2, 1, 2, 1, 2, 1, 2, 1, 2, 1}, OpDivide | OpRepeat, 3},
		{100, []int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, OpLoad, 0},
	},
	Accent: []Instruction{
		{40, []int8{15, 0, 15}, OpLoad, 0},
		{40, []int8{2, 1, 2}, OpDivide | OpRepeat, 3},
		{100, []int8{0, 0, 0}, OpLoad, 0},
		{40, []int8{0, 15, 0}, OpLoad, 0},
		{40, []int8{2, 1, 2}, OpDivide | OpRepeat, 3},
		{100, []int8{0, 0, 0}, OpLoad, 0},
	},
}

var starLaunch = Animation{
	Name: "StarLaunch",
	Matrix: []Instruction{
		{400, []int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, OpLoad, 0},
		{200, []int8{5, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, OpLoad, 0},
		{200, []int8{5, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 5}, OpSourceUp | OpRepeat, 18},
		{200, []int8{15, 15, 15, 15, 15, 15, 10, 15, 15, 15, 15, 15}, OpLoad, 0},
		{200, []int8{0, 0, 0, 0, 0, -5, -5, 0, 0, 0, 0, 0}, OpSourceDown | OpRepeat, 16},
	},
	Accent: []Instruction{
		{4000, []int8{0, 0, 0}, OpLoad, 0},
		{800, []int8{15, 15, 0}, OpLoad, 0},
		{200, []int8{0, -1, 0}, OpAdd | OpRepeat, 9},
		{200, []int8{-3, -1, 0}, OpAdd | OpRepeat, 4},
		{200, []int8{0, 0, 0}, OpLoad, 0},
	},
}

var crissCross = Animation{
	Name: "CrissCross",
	Matrix: []Instruction{
		{350, []int8{15, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, OpLoad, 0},
		{350, []int8{0, 0, 15, 0, 0, 0, 0, 0, 0, 0, 0, 0}, OpLoad, 0},
		{350, []int8{0, 0, 0, 0, 0, 0, 0, 0, 15, 0, 0, 0}, OpLoad, 0},
		{350, []int8{0, 0, 0, 0, 15, 0, 0, 0, 0, 0, 0, 0}, OpLoad, 0},
		{350, []int8{0, 0, 0, 0, 0, 0, 15, 0, 0, 0, 0, 0}, OpLoad, 0},
		{350, []int8{0, 0, 0, 0, 0, 15, 0, 0, 0, 0, 0, 0}, OpLoad, 0},
		{350, []int8{0, 0, 0, 0, 0, 0, 0, 15, 0, 0, 0, 0}, OpLoad, 0},
		{350, []int8{0, 0, 0, 15, 0, 0, 0, 0, 0, 0, 0, 0}, OpLoad, 0},
		{350, []int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 15, 0, 0}, OpLoad, 0},
		{350, []int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 15}, OpLoad, 0},
		{350, []int8{0, 15, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, OpLoad, 0},
		{350, []int8{0, 15, 0, 0, 0, 0, 0, 0, 0, 0, 15, 0}, OpLoad, 0},
	},
	Accent: []Instruction{
		{1050, []int8{0, 15, 15}, OpLoad, 0},
		{1050, []int8{15, 0, 0}, OpLoad, 0},
		{1050, []int8{2, 10, 10}, OpLoad, 0},
		{1050, []int8{15, 15, 0}, OpLoad, 0},
	},
}

var genericFlasher = Animation{
	Name: "GenericFlasher",
	Matrix: []Instruction{
		{500, []int8{15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15}, OpLoad, 0},
		{500, []int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, OpLoad, 0},
	},
	Accent: []Instruction{
		{500, []int8{7, 7, 7}, OpLoad, 0},
		{500, []int8{0, 0, 0}, OpLoad, 0},
	},
}

var kitt = Animation{
	Name: "KITT",
	Matrix: []Instruction{
		{200, []int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, OpLoad, 0},
		{100, []int8{5, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 5}, OpLoad, 0},
		{100, []int8{10, 5, 0, 0, 0, 0, 0, 0, 0, 0, 5, 10}, OpLoad, 0},
		{100, []int8{15, 10, 5, 0, 0, 0, 0, 0, 0, 5, 10, 15}, OpLoad, 0},
		{100, []int8{10, 15, 10, 5, 0, 0, 0, 0, 5, 10, 15, 10}, OpLoad, 0},
		{100, []int8{5, 10, 15, 10, 5, 0, 0, 5, 10, 15, 10, 5}, OpLoad, 0},
		{100, []int8{0, 5, 10, 15, 10, 5, 5, 10, 15, 10, 5, 0}, OpLoad, 0},
		{100, []int8{0, 0, 5, 10, 15, 10, 10, 15, 10, 5, 0, 0}, OpLoad, 0},
		{100, []int8{0, 0, 0, 5, 10, 15, 15, 10, 5, 0, 0, 0}, OpLoad, 0},
		{100, []int8{0, 0, 0, 0, 5, 10, 10, 5, 0, 0, 0, 0}, OpLoad, 0},
		{100, []int8{0, 0, 0, 0, 0, 5, 5, 0, 0, 0, 0, 0}, OpLoad, 0},
		{100, []int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, OpLoad, 0},
		{100, []int8{0, 0, 0, 0, 0, 5, 5, 0, 0, 0, 0, 0}, OpLoad, 0},
		{100, []int8{0, 0, 0, 0, 5, 10, 10, 5, 0, 0, 0, 0}, OpLoad, 0},
		{100, []int8{0, 0, 0, 5, 10, 15, 15, 10, 5, 0, 0, 0}, OpLoad, 0},
		{100, []int8{0, 0, 5, 10, 15, 10, 10, 15, 10, 5, 0, 0}, OpLoad, 0},
		{100, []int8{0, 5, 10, 15, 10, 5, 5, 10, 15, 10, 5, 0}, OpLoad, 0},
		{100, []int8{5, 10, 15, 10, 5, 0, 0, 5, 10, 15, 10, 5}, OpLoad, 0},
		{100, []int8{10, 15, 10, 5, 0, 0, 0, 0, 5, 10, 15, 10}, OpLoad, 0},
		{100, []int8{15, 10, 5, 0, 0, 0, 0, 0, 0, 5, 10, 15}, OpLoad, 0},
		{100, []int8{10, 5, 0, 0, 0, 0, 0, 0, 0, 0, 5, 10}, OpLoad, 0},
		{100, []int8{5, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 5}, OpLoad, 0},
	},
	Accent: []Instruction{
		{800, []int8{0, 0, 0}, OpLoad, 0},
		{100, []int8{5, 0, 0}, OpAdd | OpRepeat, 3},
		{100, []int8{-5, 0, 0}, OpAdd | OpRepeat, 3},
		{1300, []int8{0, 0, 0}, OpLoad, 0},
	},
}

var pingpong = Animation{
	Name: "Pingpong",
	Matrix: []Instruction{
		{175, []int8{15, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, OpLoad, 0},
		{175, []int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, OpRotateRight | OpRepeat, 4},
		{175, []int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, OpLoad, 0},
		{175, []int8{0, 0, 0, 0, 0, 0, 15, 0, 0, 0, 0, 0}, OpLoad, 0},
		{175, []int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, OpRotateRight | OpRepeat, 4},
		{175, []int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, OpLoad, 0},
		{175, []int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 15}, OpLoad, 0},
		{175, []int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, OpRotateLeft | OpRepeat, 4},
		{175, []int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, OpLoad, 0},
		{175, []int8{0, 0, 0, 0, 0, 15, 0, 0, 0, 0, 0, 0}, OpLoad, 0},
		{175, []int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, OpRotateLeft | OpRepeat, 4},
		{175, []int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, OpLoad, 0},
	},
	Accent: []Instruction{
		{1050, []int8{15, 15, 0}, OpLoad, 0},
		{2450, []int8{0, 15, 15}, OpLoad, 0},
		{1400, []int8{15, 15, 0}, OpLoad, 0},
	},
}

var fadeRing = Animation{
	Name: "FadeRing",
	Matrix: []Instruction{
		{40, []int8{15, 1, 15, 1, 15, 1, 1, 15, 1, 15, 1, 15}, OpLoad, 0},
		{40, []int8{-1, 1, -1, 1, -1, 1, 1, -1, 1, -1, 1, -1}, OpAdd | OpRepeat, 13},
		{40, []int8{1, -1, 1, -1, 1, -1, -1, 1, -1, 1, -1, 1}, OpAdd | OpRepeat, 13},
	},
	Accent: []Instruction{
		{40, []int8{15, 1, 0}, OpLoad, 0},
		{40, []int8{-1, 0, 0}, OpAdd | OpRepeat, 13},
		{40, []int8{1, 0, 0}, OpAdd | OpRepeat, 13},
	},
}

var yingYang = Animation{
	Name: "YingYang",
	Matrix: []Instruction{
		{150, []int8{0, 5, 10, 15, 0, 0, 0, 5, 10, 15, 0, 0}, OpLoad, 0},
		{150, []int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, OpRotateRight | OpRepeat, 4},
	},
	Accent: []Instruction{
		{450, []int8{2, 6, 15}, OpLoad, 0},
		{450, []int8{15, 8, 1}, OpLoad, 0},
	},
}

var pseudoRandomFade = Animation{
	Name: "PseudoRandomFade",
	Matrix: []Instruction{
		{66, []int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, OpLoad, 0},
		{66, []int8{0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0}, OpAdd | OpRepeat, 14},
		{66, []int8{0, 0, 1, 0, 0, 0, 0, -1, 0, 0, 0, 0}, OpAdd | OpRepeat, 14},
		{66, []int8{0, 0, -1, 0, 0, 0, 0, 0, 0, 0, 1, 0}, OpAdd | OpRepeat, 14},
		{66, []int8{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, -1, 0}, OpAdd | OpRepeat, 14},
		{66, []int8{-1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0}, OpAdd | OpRepeat, 14},
		{66, []int8{0, 0, 0, 0, 0, -1, 0, 1, 0, 0, 0, 0}, OpAdd | OpRepeat, 14},
		{66, []int8{0, 0, 0, 0, 0, 0, 0, -1, 0, 0, 0, 1}, OpAdd | OpRepeat, 14},
		{66, []int8{0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, -1}, OpAdd | OpRepeat, 14},
		{66, []int8{0, -1, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0}, OpAdd | OpRepeat, 14},
		{66, []int8{0, 0, 0, -1, 0, 0, 1, 0, 0, 0, 0, 0}, OpAdd | OpRepeat, 14},
		{66, []int8{0, 0, 0, 0, 0, 0, -1, 0, 0, 0, 0, 0}, OpAdd | OpRepeat, 14},
		{66, []int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0}, OpAdd | OpRepeat, 14},
		{66, []int8{0, 0, 0, 0, 1, 0, 0, 0, 0, -1, 0, 0}, OpAdd | OpRepeat, 14},
		{66, []int8{0, 0, 0, 0, -1, 0, 0, 0, 0, 0, 0, 0}, OpAdd | OpRepeat, 14},
	},
	Accent: []Instruction{
		{9966, []int8{0, 0, 0}, OpLoad, 0},
		{66, []int8{1, 0, 0}, OpAdd | OpRepeat, 14},
		{66, []int8{-1, 0, 0}, OpAdd | OpRepeat, 14},
		{1980, []int8{0, 0, 0}, OpLoad, 0},
	},
}

var flicker = Animation{
	Name: "Flicker",
	Matrix: []Instruction{
		{200, []int8{0, 0, 0, 0, 0, 0, 0, 0, 15, 0, 0, 0}, OpLoad, 0},
		{200, []int8{0, 0, 15, 0, 0, 0, 0, 0, 0, 0, 0, 0}, OpLoad, 0},
		{200, []int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 15, 0}, OpLoad, 0},
		{200, []int8{0, 0, 0, 0, 0, 15, 0, 0, 0, 0, 0, 0}, OpLoad, 0},
		{200, []int8{15, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, OpLoad, 0},
		{200, []int8{0, 15, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, OpLoad, 0},
		{200, []int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 15}, OpLoad, 0},
		{200, []int8{0, 0, 0, 0, 0, 0, 0, 15, 0, 0, 0, 0}, OpLoad, 0},
		{200, []int8{0, 0, 0, 15, 0, 0, 0, 0, 0, 0, 0, 0}, OpLoad, 0},
		{200, []int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 15, 0, 0}, OpLoad, 0},
	},
	Accent: []Instruction{
		{400, []int8{15, 0, 0}, OpLoad, 0},
		{100, []int8{15, 15, 0}, OpLoad, 0},
		{800, []int8{15, 0, 0}, OpLoad, 0},
		{100, []int8{15, 15, 0}, OpLoad, 0},
		{500, []int8{15, 0, 0}, OpLoad, 0},
		{100, []int8{15, 15, 0}, OpLoad, 0},
	},
}

// race is a circulating trace that speeds up by a third each lap.
var race = Animation{
	Name: "Race",
	Matrix: []Instruction{
		{100, []int8{5, 10, 15, 0, 0, 0, 0, 0, 0, 0, 0, 0}, OpLoad, 0},
		{100, []int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, OpRotateRight | OpRepeat, 2},
		{100, []int8{0, 0, 0, 0, 5, 10, 0, 0, 0, 0, 0, 0}, OpLoad, 0},
		{100, []int8{0, 0, 0, 0, 0, 5, 15, 0, 0, 0, 0, 0}, OpLoad, 0},
		{100, []int8{0, 0, 0, 0, 0, 0, 10, 15, 0, 0, 0, 0}, OpLoad, 0},
		{100, []int8{0, 0, 0, 0, 0, 0, 5, 10, 15, 0, 0, 0}, OpLoad, 0},
		{100, []int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, OpRotateRight | OpRepeat, 4},
		{70, []int8{5, 10, 15, 0, 0, 0, 0, 0, 0, 0, 0, 0}, OpLoad, 0},
		{70, []int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, OpRotateRight | OpRepeat, 2},
		{70, []int8{0, 0, 0, 0, 5, 10, 0, 0, 0, 0, 0, 0}, OpLoad, 0},
		{70, []int8{0, 0, 0, 0, 0, 5, 15, 0, 0, 0, 0, 0}, OpLoad, 0},
		{70, []int8{0, 0, 0, 0, 0, 0, 10, 15, 0, 0, 0, 0}, OpLoad, 0},
		{70, []int8{0, 0, 0, 0, 0, 0, 5, 10, 15, 0, 0, 0}, OpLoad, 0},
		{70, []int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, OpRotateRight | OpRepeat, 4},
		{40, []int8{5, 10, 15, 0, 0, 0, 0, 0, 0, 0, 0, 0}, OpLoad, 0},
		{40, []int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, OpRotateRight | OpRepeat, 2},
		{40, []int8{0, 0, 0, 0, 5, 10, 0, 0, 0, 0, 0, 0}, OpLoad, 0},
		{40, []int8{0, 0, 0, 0, 0, 5, 15, 0, 0, 0, 0, 0}, OpLoad, 0},
		{40, []int8{0, 0, 0, 0, 0, 0, 10, 15, 0, 0, 0, 0}, OpLoad, 0},
		{40, []int8{0, 0, 0, 0, 0, 0, 5, 10, 15, 0, 0, 0}, OpLoad, 0},
		{40, []int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, OpRotateRight | OpRepeat, 4},
	},
	Accent: []Instruction{
		{400, []int8{0, 0, 0}, OpLoad, 0},
		{100, []int8{15, 0, 0}, OpLoad, 0},
		{100, []int8{-5, 0, 0}, OpAdd | OpRepeat, 1},
		{600, []int8{0, 0, 0}, OpLoad, 0},
		{280, []int8{0, 0, 0}, OpLoad, 0},
		{70, []int8{15, 0, 0}, OpLoad, 0},
		{70, []int8{-5, 0, 0}, OpAdd | OpRepeat, 1},
		{420, []int8{0, 0, 0}, OpLoad, 0},
		{160, []int8{0, 0, 0}, OpLoad, 0},
		{40, []int8{15, 0, 0}, OpLoad, 0},
		{40, []int8{-5, 0, 0}, OpAdd | OpRepeat, 1},
		{240, []int8{0, 0, 0}, OpLoad, 0},
	},
}

var sparkle = Animation{
	Name: "Sparkle",
	Matrix: []Instruction{
		{200, []int8{4, 4, 4, 4, 15, 4, 4, 4, 4, 4, 4, 4}, OpLoad, 0},
		{200, []int8{4, 15, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4}, OpLoad, 0},
		{200, []int8{4, 4, 4, 4, 4, 4, 15, 4, 4, 4, 4, 4}, OpLoad, 0},
		{200, []int8{4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 15, 4}, OpLoad, 0},
		{200, []int8{4, 4, 15, 4, 4, 4, 4, 4, 4, 4, 4, 4}, OpLoad, 0},
		{200, []int8{15, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4}, OpLoad, 0},
		{200, []int8{4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 15}, OpLoad, 0},
		{200, []int8{4, 4, 4, 15, 4, 4, 4, 4, 4, 4, 4, 4}, OpLoad, 0},
		{200, []int8{4, 4, 4, 4, 4, 4, 4, 4, 4, 15, 4, 4}, OpLoad, 0},
		{200, []int8{4, 4, 4, 4, 4, 15, 4, 4, 4, 4, 4, 4}, OpLoad, 0},
	},
	Accent: []Instruction{
		{500, []int8{15, 0, 0}, OpLoad, 0},
		{250, []int8{15, 3, 1}, OpLoad, 0},
		{250, []int8{15, 6, 2}, OpLoad, 0},
		{500, []int8{15, 10, 3}, OpLoad, 0},
		{250, []int8{15, 6, 2}, OpLoad, 0},
		{250, []int8{15, 3, 1}, OpLoad, 0},
	},
}

var ice = Animation{
	Name: "Ice",
	Matrix: []Instruction{
		{300, []int8{0, 0, 0, 0, 0, 15, 0, 0, 0, 0, 0, 0}, OpLoad, 0},
		{300, []int8{0, 0, 0, 0, 15, 10, 0, 0, 0, 0, 0, 0}, OpLoad, 0},
		{300, []int8{0, 0, 0, 15, 10, 5, 15, 0, 0, 0, 0, 0}, OpLoad, 0},
		{300, []int8{0, 0, 15, 10, 5, 0, 10, 15, 0, 0, 0, 0}, OpLoad, 0},
		{300, []int8{0, 15, 10, 5, 0, 0, 5, 10, 15, 0, 0, 0}, OpLoad, 0},
		{300, []int8{15, 10, 5, 0, 0, 0, 0, 5, 10, 15, 0, 0}, OpLoad, 0},
		{300, []int8{15, 5, 0, 0, 0, 0, 0, 0, 5, 10, 15, 0}, OpLoad, 0},
		{300, []int8{15, 0, 0, 0, 0, 0, 0, 0, 0, 5, 10, 15}, OpLoad, 0},
		{300, []int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 5, 15}, OpLoad, 0},
		{300, []int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 15}, OpLoad, 0},
		{300, []int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, OpLoad, 0},
	},
	Accent: []Instruction{
		{194, []int8{0, 15, 15}, OpLoad, 0},
		{194, []int8{0, -1, 0}, OpAdd | OpRepeat, 15},
	},
}

var split2 = Animation{
	Name: "Split2",
	Matrix: []Instruction{
		{500, []int8{15, 0, 15, 0, 15, 0, 15, 0, 15, 0, 15, 0}, OpLoad, 0},
		{500, []int8{0, 15, 0, 15, 0, 15, 0, 15, 0, 15, 0, 15}, OpLoad, 0},
	},
	Accent: []Instruction{
		{333, []int8{15, 0, 15}, OpLoad, 0},
		{333, []int8{0, 15, 15}, OpLoad, 0},
		{334, []int8{15, 15, 0}, OpLoad, 0},
	},
}

var stepping = Animation{
	Name: "Stepping",
	Matrix: []Instruction{
		{350, []int8{15, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, OpLoad, 0},
		{350, []int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, OpRotateRight | OpRepeat, 10},
	},
	Accent: []Instruction{
		{350, []int8{15, 0, 0}, OpLoad, 0},
		{350, []int8{15, 6, 0}, OpLoad, 0},
		{350, []int8{15, 10, 0}, OpLoad, 0},
		{350, []int8{15, 15, 0}, OpLoad, 0},
		{350, []int8{0, 15, 0}, OpLoad, 0},
		{350, []int8{0, 10, 0}, OpLoad, 0},
		{350, []int8{2, 10, 10}, OpLoad, 0},
		{350, []int8{0, 15, 15}, OpLoad, 0},
		{350, []int8{7, 5, 10}, OpLoad, 0},
		{350, []int8{15, 0, 15}, OpLoad, 0},
		{350, []int8{15, 12, 12}, OpLoad, 0},
	},
}

// blackness holds every LED dark. Power down selects it so nothing glows
// while the supply drains; the button never cycles onto it.
var blackness = Animation{
	Name: "Blackness",
	Matrix: []Instruction{
		{0xFFFF, []int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, OpLoad, 0},
	},
	Accent: []Instruction{
		{0xFFFF, []int8{0, 0, 0}, OpLoad, 0},
	},
}

var builtinCatalog = mustCatalog(
	retroVersion,
	softFlashing,
	disco,
	starLaunch,
	crissCross,
	genericFlasher,
	kitt,
	pingpong,
	fadeRing,
	yingYang,
	pseudoRandomFade,
	flicker,
	race,
	sparkle,
	ice,
	split2,
	stepping,
	blackness,
)

// BuiltinCatalog returns the built-in animation set. The catalog is shared
// and must not be mutated.
func BuiltinCatalog() *Catalog {
	return builtinCatalog
}

func mustCatalog(anims ...Animation) *Catalog {
	c, err := NewCatalog(anims)
	if err != nil {
		panic(err)
	}
	return c
}
