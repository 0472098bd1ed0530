package rgbforth

// registerBuiltins populates the dictionary with every language
// primitive, mirroring forth.cpp's setup() dict->def(...) block.
func (in *Interp) registerBuiltins() {
	def := func(word string, fn Primitive) {
		in.Dict.Define(in.Alloc, word, in.Alloc.NewNamedFunc(word, fn, nil))
	}

	def("+", primAdd)
	def("-", primSub)
	def("*", primMul)
	def("/", primDiv)
	def("mod", primMod)
	def("sq", primSq)
	def("sqrt", primSqrt)
	def("constrain", primConstrain)
	def("sin", primSin)
	def("cos", primCos)
	def("tan", primTan)
	def("deg", primDeg)
	def("rad", primRad)
	def("pow", primPow)
	def("abs", primAbs)
	def("min", primMin)
	def("max", primMax)
	def("round", primRound)
	def("ceil", primCeil)
	def("floor", primFloor)
	def("eq", primEq)
	def("ne", primNe)
	def("gt", primGt)
	def("lt", primLt)
	def("ge", primGe)
	def("le", primLe)
	def("and", primAnd)
	def("or", primOr)
	def("not", primNot)
	def("sum", primSum)
	def("size", primSize)

	def("stack:size", primStackSize)
	def("num:dec", primNumDec)
	def("num:sci", primNumSci)
	def("str:mid", primStrMid)

	def("dup", primDup)
	def("over", primOver)
	def("aty", primAty)
	def("atz", primAtz)
	def("atu", primAtu)
	def("atv", primAtv)
	def("atw", primAtw)
	def("at", primAt)
	def("swap", primSwap)
	def("rot", primRot)
	def("rup", primRup)
	def("rot4", primRot4)
	def("rup4", primRup4)
	def("rotn", primRotn)
	def("rupn", primRupn)
	def("drop", primDrop)
	def("dup2", primDup2)
	def("drop2", primDrop2)
	def("clst", primClst)

	def(">>>", primStash)
	def("<<<", primUnstash)
	def("<swap>", primSwapStash)

	def("array", primArray)
	def("identity", primIdentity)
	def("index", primIndex)
	def("geta", primGeta)
	def("puta", primPuta)
	def("dgeta", primDgeta)
	def("dputa", primDputa)
	def("map", primMap)

	def("if", primIf)
	def("ife", primIfe)
	def("loop", primLoop)
	def("repeat", primRepeat)
	def("call", primCall)

	def("rgbformat", primRgbFormat)
	def("rgb>", primRgbToColor)
	def(">rgb", primColorToRgb)
	def("hsv>", primHsv)
	def("hsvr>", primHsvr)
	def("blend", primBlend)
	def("ablend", primAblend)

	def("def", primDef)
	def("redef", primRedef)
	def("forget", primForget)
	def("def?", primDefQuery)
	def("vget", primVget)
	def("step", primStep)

	def("rb", primRb)

	def("mem:malloc", primMemMalloc)
	def("mem:alloc", primMemAlloc)
	def("mem:free", primMemFree)
	def("mem:calloc", primMemCalloc)
	def("mem:cfree", primMemCfree)
	def("mem:amalloc", primMemAmalloc)
	def("mem:afree", primMemAfree)
	def("mem:sram", primMemSram)

	def(".", primDot)
	def("cr", primCr)
	def("prtdict", primPrtDict)
	def("prtstk", primPrtStk)
}
