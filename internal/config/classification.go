package config

// defaultClassification is the codegen.cpp symbol map: which partition each
// CodeGenerator method lands in.
func defaultClassification() []ClassifyEntry {
	return []ClassifyEntry{
		// Match functions
		{Symbol: "generateMatchExpr", Category: "match"},
		{Symbol: "generateIsExpr", Category: "match"},
		{Symbol: "matchPattern", Category: "match"},

		// Type functions
		{Symbol: "convertType", Category: "type"},
		{Symbol: "convertPrimitiveType", Category: "type"},
		{Symbol: "getOrCreateStructType", Category: "type"},
		{Symbol: "getEnumType", Category: "type"},
		{Symbol: "createOptionalType", Category: "type"},
		{Symbol: "ensureOptionalEnumDef", Category: "type"},
		{Symbol: "resolveGenericType", Category: "type"},
		{Symbol: "mangleGenericName", Category: "type"},
		{Symbol: "resolveGenericStructName", Category: "type"},
		{Symbol: "isGenericFunction", Category: "type"},
		{Symbol: "instantiateGenericFunction", Category: "type"},
		{Symbol: "instantiateGenericStruct", Category: "type"},
		{Symbol: "instantiateGenericEnum", Category: "type"},
		{Symbol: "instantiateGenericStructMethods", Category: "type"},
		{Symbol: "convertTypeToCurrentContext", Category: "type"},

		// Struct functions
		{Symbol: "generateFunctionStmt", Category: "struct"},
		{Symbol: "generateExternStmt", Category: "struct"},
		{Symbol: "generateStructStmt", Category: "struct"},
		{Symbol: "generateEnumStmt", Category: "struct"},
		{Symbol: "generateImplStmt", Category: "struct"},
		{Symbol: "generateStructLiteralExpr", Category: "struct"},
		{Symbol: "generateEnumVariantExpr", Category: "struct"},
		{Symbol: "generateMemberAccessExpr", Category: "struct"},
		{Symbol: "generateArrayLiteralExpr", Category: "struct"},
		{Symbol: "importTypeFromModule", Category: "struct"},

		// Statement functions
		{Symbol: "generateStmt", Category: "stmt"},
		{Symbol: "generateLetStmt", Category: "stmt"},
		{Symbol: "generateReturnStmt", Category: "stmt"},
		{Symbol: "generateIfStmt", Category: "stmt"},
		{Symbol: "generateLoopStmt", Category: "stmt"},
		{Symbol: "generateBreakStmt", Category: "stmt"},
		{Symbol: "generateContinueStmt", Category: "stmt"},
		{Symbol: "generateBlockStmt", Category: "stmt"},
		{Symbol: "generateExprStmt", Category: "stmt"},

		// Expression functions
		{Symbol: "generateExpr", Category: "expr"},
		{Symbol: "generateBinaryExpr", Category: "expr"},
		{Symbol: "generateUnaryExpr", Category: "expr"},
		{Symbol: "generateCallExpr", Category: "expr"},
		{Symbol: "generateArgumentValue", Category: "expr"},
		{Symbol: "generateBuiltinCall", Category: "expr"},
		{Symbol: "generateAssignExpr", Category: "expr"},
		{Symbol: "generateIndexExpr", Category: "expr"},
		{Symbol: "generateIdentifierExpr", Category: "expr"},
		{Symbol: "generateIfExpr", Category: "expr"},
		{Symbol: "generateCastExpr", Category: "expr"},
		{Symbol: "generateTryExpr", Category: "expr"},
		{Symbol: "generateOkExpr", Category: "expr"},
		{Symbol: "generateErrExpr", Category: "expr"},
	}
}
