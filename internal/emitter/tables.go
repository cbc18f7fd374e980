package emitter

// Setting is a fixed global device setting
type Setting struct {
	Name  string
	Value int
}

// GlobalSettings are written once after all board sections, in this order
var GlobalSettings = []Setting{
	{"AfterTouchActive", 1},
	{"LightOnKeyStrokes", 0},
	{"InvertFootController", 0},
	{"InvertSustain", 1},
	{"ExprCtrlSensitivity", 0},
}

// CurveLength is the number of entries in a 7-bit curve table
const CurveLength = 128

// VelocityIntervalTable is hardware calibration data taken as-is from the
// device editor; there is no formula behind it.
var VelocityIntervalTable = [CurveLength - 1]int{
	1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16,
	17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32,
	33, 34, 35, 36, 37, 38, 39, 40, 41, 42, 43, 44, 45, 46, 47, 48,
	49, 50, 51, 52, 53, 54, 55, 56, 57, 58, 60, 61, 62, 63, 64, 66,
	67, 68, 70, 71, 72, 73, 74, 76, 77, 79, 81, 82, 84, 86, 88, 90,
	92, 94, 96, 98, 101, 104, 107, 111, 115, 119, 124, 129, 134, 140, 146, 152,
	159, 170, 171, 175, 180, 185, 190, 195, 200, 205, 210, 215, 220, 225, 230, 235,
	240, 245, 250, 255, 260, 265, 270, 275, 280, 285, 290, 295, 300, 305, 310,
}

// Curve is a named table written as space-separated integers
type Curve struct {
	Name   string
	Values []int
}

// IdentityCurve returns 0..CurveLength-1
func IdentityCurve() []int {
	values := make([]int, CurveLength)
	for i := range values {
		values[i] = i
	}
	return values
}

// Curves returns the curve tables in output order
func Curves() []Curve {
	return []Curve{
		{"VelocityIntrvlTbl", VelocityIntervalTable[:]},
		{"NoteOnOffVelocityCrvTbl", IdentityCurve()},
		{"FaderConfig", IdentityCurve()},
		{"afterTouchConfig", IdentityCurve()},
		{"LumaTouchConfig", IdentityCurve()},
	}
}
