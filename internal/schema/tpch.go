package schema

var tpch = buildTPCH()

func buildTPCH() *Registry {
	const (
		i = TypeInt
		f = TypeFloat
		s = TypeString
	)

	return mustRegistry(
		MustTable("customer",
			[]string{"c_custkey", "c_name", "c_address", "c_nationkey", "c_phone", "c_acctbal", "c_mktsegment", "c_comment"},
			[]ColumnType{i, s, s, i, s, f, s, s}),
		MustTable("lineitem",
			[]string{"l_orderkey", "l_partkey", "l_suppkey", "l_linenumber", "l_quantity", "l_extendedprice", "l_discount", "l_tax",
				"l_returnflag", "l_linestatus", "l_shipdate", "l_commitdate", "l_receiptdate", "l_shipinstruct", "l_shipmode",
				"l_comment"},
			[]ColumnType{i, i, i, i, f, f, f, f, s, s, s, s, s, s, s, s}),
		MustTable("nation",
			[]string{"n_nationkey", "n_name", "n_regionkey", "n_comment"},
			[]ColumnType{i, s, i, s}),
		MustTable("orders",
			[]string{"o_orderkey", "o_custkey", "o_orderstatus", "o_totalprice", "o_orderdate", "o_orderpriority", "o_clerk",
				"o_shippriority", "o_comment"},
			[]ColumnType{i, i, s, f, s, s, s, i, s}),
		MustTable("part",
			[]string{"p_partkey", "p_name", "p_mfgr", "p_brand", "p_type", "p_size", "p_container", "p_retailsize", "p_comment"},
			[]ColumnType{i, s, s, s, s, i, s, i, s}),
		MustTable("partsupp",
			[]string{"ps_partkey", "ps_suppkey", "ps_availqty", "ps_supplycost", "ps_comment"},
			[]ColumnType{i, i, i, f, s}),
		MustTable("region",
			[]string{"r_regionkey", "r_name", "r_comment"},
			[]ColumnType{i, s, s}),
		MustTable("supplier",
			[]string{"s_suppkey", "s_name", "s_address", "s_nationkey", "s_phone", "s_acctbal", "s_comment"},
			[]ColumnType{i, s, s, i, s, f, s}),
	)
}

// TPCH returns the registry of the eight TPC-H tables in dbgen order
func TPCH() *Registry {
	return tpch
}

func mustRegistry(tables ...Table) *Registry {
	r, err := NewRegistry(tables...)
	if err != nil {
		panic(err)
	}
	return r
}
