package warp

// Symbols for the System` names the rule system refers to directly. Names
// that only matter to one builtin are interned where they are used.
//
// This list is sorted in alphabetic order.
var (
	SymbolAborted               = system("$Aborted")
	SymbolAccuracy              = system("Accuracy")
	SymbolAll                   = system("All")
	SymbolAlternatives          = system("Alternatives")
	SymbolAnd                   = system("And")
	SymbolAppend                = system("Append")
	SymbolApply                 = system("Apply")
	SymbolArcCos                = system("ArcCos")
	SymbolArcSin                = system("ArcSin")
	SymbolArcTan                = system("ArcTan")
	SymbolAssociation           = system("Association")
	SymbolAssumptions           = system("$Assumptions")
	SymbolAttributes            = system("Attributes")
	SymbolAutomatic             = system("Automatic")
	SymbolBlank                 = system("Blank")
	SymbolBlankNullSequence     = system("BlankNullSequence")
	SymbolBlankSequence         = system("BlankSequence")
	SymbolBlend                 = system("Blend")
	SymbolBreak                 = system("Break")
	SymbolByteArray             = system("ByteArray")
	SymbolC                     = system("C")
	SymbolCases                 = system("Cases")
	SymbolCatalan               = system("Catalan")
	SymbolCeiling               = system("Ceiling")
	SymbolClear                 = system("Clear")
	SymbolClearAll              = system("ClearAll")
	SymbolClearAttributes       = system("ClearAttributes")
	SymbolClusteringComponents  = system("ClusteringComponents")
	SymbolColorConvert          = system("ColorConvert")
	SymbolColorData             = system("ColorData")
	SymbolColorQuantize         = system("ColorQuantize")
	SymbolCompile               = system("Compile")
	SymbolCompiledFunction      = system("CompiledFunction")
	SymbolComplex               = system("Complex")
	SymbolComplexInfinity       = system("ComplexInfinity")
	SymbolCompoundExpression    = system("CompoundExpression")
	SymbolCondition             = system("Condition")
	SymbolConditionalExpression = system("ConditionalExpression")
	SymbolConjugate             = system("Conjugate")
	SymbolConstant              = system("Constant")
	SymbolContainsOnly          = system("ContainsOnly")
	SymbolContext               = system("$Context")
	SymbolContextPath           = system("$ContextPath")
	SymbolContinue              = system("Continue")
	SymbolCos                   = system("Cos")
	SymbolCosh                  = system("Cosh")
	SymbolCot                   = system("Cot")
	SymbolCoth                  = system("Coth")
	SymbolCovariance            = system("Covariance")
	SymbolD                     = system("D")
	SymbolDefault               = system("Default")
	SymbolDefinition            = system("Definition")
	SymbolDerivative            = system("Derivative")
	SymbolDirectedInfinity      = system("DirectedInfinity")
	SymbolDispatch              = system("Dispatch")
	SymbolDot                   = system("Dot")
	SymbolDownValues            = system("DownValues")
	SymbolE                     = system("E")
	SymbolEdgeForm              = system("EdgeForm")
	SymbolEqual                 = system("Equal")
	SymbolEquivalent            = system("Equivalent")
	SymbolEulerGamma            = system("EulerGamma")
	SymbolExactNumberQ          = system("ExactNumberQ")
	SymbolExpandAll             = system("ExpandAll")
	SymbolExport                = system("Export")
	SymbolExportString          = system("ExportString")
	SymbolFaceForm              = system("FaceForm")
	SymbolFactorial             = system("Factorial")
	SymbolFailed                = system("$Failed")
	SymbolFalse                 = system("False")
	SymbolFindClusters          = system("FindClusters")
	SymbolFlat                  = system("Flat")
	SymbolFloor                 = system("Floor")
	SymbolFormat                = system("Format")
	SymbolFractionBox           = system("FractionBox")
	SymbolFullForm              = system("FullForm")
	SymbolFunction              = system("Function")
	SymbolGamma                 = system("Gamma")
	SymbolGeneral               = system("General")
	SymbolGet                   = system("Get")
	SymbolGoldenRatio           = system("GoldenRatio")
	SymbolGraphics              = system("Graphics")
	SymbolGraphics3D            = system("Graphics3D")
	SymbolGreater               = system("Greater")
	SymbolGreaterEqual          = system("GreaterEqual")
	SymbolGrid                  = system("Grid")
	SymbolHead                  = system("Head")
	SymbolHold                  = system("Hold")
	SymbolHoldAll               = system("HoldAll")
	SymbolHoldAllComplete       = system("HoldAllComplete")
	SymbolHoldFirst             = system("HoldFirst")
	SymbolHoldForm              = system("HoldForm")
	SymbolHoldPattern           = system("HoldPattern")
	SymbolHoldRest              = system("HoldRest")
	SymbolHue                   = system("Hue")
	SymbolIf                    = system("If")
	SymbolIm                    = system("Im")
	SymbolImage                 = system("Image")
	SymbolImplies               = system("Implies")
	SymbolIn                    = system("In")
	SymbolIndeterminate         = system("Indeterminate")
	SymbolInequality            = system("Inequality")
	SymbolInfinity              = system("Infinity")
	SymbolInfix                 = system("Infix")
	SymbolInputForm             = system("InputForm")
	SymbolInteger               = system("Integer")
	SymbolIntegrate             = system("Integrate")
	SymbolIterationLimit        = system("$IterationLimit")
	SymbolKey                   = system("Key")
	SymbolLeft                  = system("Left")
	SymbolLength                = system("Length")
	SymbolLess                  = system("Less")
	SymbolLessEqual             = system("LessEqual")
	SymbolLine                  = system("Line")
	SymbolList                  = system("List")
	SymbolListable              = system("Listable")
	SymbolLocked                = system("Locked")
	SymbolLog                   = system("Log")
	SymbolLog10                 = system("Log10")
	SymbolLogPlot               = system("LogPlot")
	SymbolMachinePrecision      = system("MachinePrecision")
	SymbolMakeBoxes             = system("MakeBoxes")
	SymbolMap                   = system("Map")
	SymbolMapThread             = system("MapThread")
	SymbolMatchQ                = system("MatchQ")
	SymbolMathMLForm            = system("MathMLForm")
	SymbolMatrixPower           = system("MatrixPower")
	SymbolMatrixQ               = system("MatrixQ")
	SymbolMax                   = system("Max")
	SymbolMaxExtraPrecision     = system("$MaxExtraPrecision")
	SymbolMaxPrecision          = system("$MaxPrecision")
	SymbolMean                  = system("Mean")
	SymbolMedian                = system("Median")
	SymbolMemberQ               = system("MemberQ")
	SymbolMessageName           = system("MessageName")
	SymbolMessages              = system("Messages")
	SymbolMinus                 = system("Minus")
	SymbolMissing               = system("Missing")
	SymbolN                     = system("N")
	SymbolNIntegrate            = system("NIntegrate")
	SymbolNValues               = system("NValues")
	SymbolNeeds                 = system("Needs")
	SymbolNone                  = system("None")
	SymbolNorm                  = system("Norm")
	SymbolNormal                = system("Normal")
	SymbolNot                   = system("Not")
	SymbolNothing               = system("Nothing")
	SymbolNull                  = system("Null")
	SymbolNumberForm            = system("NumberForm")
	SymbolNumberQ               = system("NumberQ")
	SymbolNumericFunction       = system("NumericFunction")
	SymbolNumericQ              = system("NumericQ")
	SymbolO                     = system("O")
	SymbolOneIdentity           = system("OneIdentity")
	SymbolOptionValue           = system("OptionValue")
	SymbolOptional              = system("Optional")
	SymbolOptions               = system("Options")
	SymbolOptionsPattern        = system("OptionsPattern")
	SymbolOr                    = system("Or")
	SymbolOrderless             = system("Orderless")
	SymbolOut                   = system("Out")
	SymbolOutputForm            = system("OutputForm")
	SymbolOverflow              = system("Overflow")
	SymbolOwnValues             = system("OwnValues")
	SymbolPackages              = system("$Packages")
	SymbolPart                  = system("Part")
	SymbolPattern               = system("Pattern")
	SymbolPatternTest           = system("PatternTest")
	SymbolPi                    = system("Pi")
	SymbolPiecewise             = system("Piecewise")
	SymbolPlot                  = system("Plot")
	SymbolPlus                  = system("Plus")
	SymbolPoint                 = system("Point")
	SymbolPolygon               = system("Polygon")
	SymbolPossibleZeroQ         = system("PossibleZeroQ")
	SymbolPower                 = system("Power")
	SymbolPrecision             = system("Precision")
	SymbolProtected             = system("Protected")
	SymbolQuantity              = system("Quantity")
	SymbolQuiet                 = system("Quiet")
	SymbolQuotient              = system("Quotient")
	SymbolQuotientRemainder     = system("QuotientRemainder")
	SymbolRGBColor              = system("RGBColor")
	SymbolRandomComplex         = system("RandomComplex")
	SymbolRandomReal            = system("RandomReal")
	SymbolRational              = system("Rational")
	SymbolRe                    = system("Re")
	SymbolReadProtected         = system("ReadProtected")
	SymbolReal                  = system("Real")
	SymbolRealDigits            = system("RealDigits")
	SymbolRecursionLimit        = system("$RecursionLimit")
	SymbolRepeated              = system("Repeated")
	SymbolRepeatedNull          = system("RepeatedNull")
	SymbolReturn                = system("Return")
	SymbolReverse               = system("Reverse")
	SymbolRight                 = system("Right")
	SymbolRound                 = system("Round")
	SymbolRow                   = system("Row")
	SymbolRowBox                = system("RowBox")
	SymbolRule                  = system("Rule")
	SymbolRuleDelayed           = system("RuleDelayed")
	SymbolSameQ                 = system("SameQ")
	SymbolSequence              = system("Sequence")
	SymbolSeries                = system("Series")
	SymbolSeriesData            = system("SeriesData")
	SymbolSet                   = system("Set")
	SymbolSetAttributes         = system("SetAttributes")
	SymbolSetDelayed            = system("SetDelayed")
	SymbolSign                  = system("Sign")
	SymbolSimplify              = system("Simplify")
	SymbolSin                   = system("Sin")
	SymbolSinh                  = system("Sinh")
	SymbolSlot                  = system("Slot")
	SymbolSparseArray           = system("SparseArray")
	SymbolSplit                 = system("Split")
	SymbolSqrtBox               = system("SqrtBox")
	SymbolStandardDeviation     = system("StandardDeviation")
	SymbolStandardForm          = system("StandardForm")
	SymbolString                = system("String")
	SymbolStringForm            = system("StringForm")
	SymbolStringInsert          = system("StringInsert")
	SymbolStringJoin            = system("StringJoin")
	SymbolStringLength          = system("StringLength")
	SymbolStringPosition        = system("StringPosition")
	SymbolStringQ               = system("StringQ")
	SymbolStringRiffle          = system("StringRiffle")
	SymbolStringSplit           = system("StringSplit")
	SymbolStyle                 = system("Style")
	SymbolSubValues             = system("SubValues")
	SymbolSubscriptBox          = system("SubscriptBox")
	SymbolSubsetQ               = system("SubsetQ")
	SymbolSubsuperscriptBox     = system("SubsuperscriptBox")
	SymbolSubtract              = system("Subtract")
	SymbolSuperscriptBox        = system("SuperscriptBox")
	SymbolSymbol                = system("Symbol")
	SymbolTable                 = system("Table")
	SymbolTan                   = system("Tan")
	SymbolTanh                  = system("Tanh")
	SymbolTeXForm               = system("TeXForm")
	SymbolThreshold             = system("Threshold")
	SymbolThrow                 = system("Throw")
	SymbolThread                = system("Thread")
	SymbolTimes                 = system("Times")
	SymbolToString              = system("ToString")
	SymbolTotal                 = system("Total")
	SymbolTraditionalForm       = system("TraditionalForm")
	SymbolTrue                  = system("True")
	SymbolUndefined             = system("Undefined")
	SymbolUnequal               = system("Unequal")
	SymbolUnevaluated           = system("Unevaluated")
	SymbolUnset                 = system("Unset")
	SymbolUpValues              = system("UpValues")
	SymbolVariance              = system("Variance")
	SymbolXor                   = system("Xor")
)
