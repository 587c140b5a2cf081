package palette

// Sequential scales, light to dark. Nine-class ColorBrewer keypoints.
var brewer = map[string]Gradient{
	"Reds": evenly(
		"#FFF5F0", "#FEE0D2", "#FCBBA1", "#FC9272", "#FB6A4A",
		"#EF3B2C", "#CB181D", "#A50F15", "#67000D",
	),
	"Blues": evenly(
		"#F7FBFF", "#DEEBF7", "#C6DBEF", "#9ECAE1", "#6BAED6",
		"#4292C6", "#2171B5", "#08519C", "#08306B",
	),
	"Greens": evenly(
		"#F7FCF5", "#E5F5E0", "#C7E9C0", "#A1D99B", "#74C476",
		"#41AB5D", "#238B45", "#006D2C", "#00441B",
	),
	"Purples": evenly(
		"#FCFBFD", "#EFEDF5", "#DADAEB", "#BCBDDC", "#9E9AC8",
		"#807DBA", "#6A51A3", "#54278F", "#3F007D",
	),
	"Oranges": evenly(
		"#FFF5EB", "#FEE6CE", "#FDD0A2", "#FDAE6B", "#FD8D3C",
		"#F16913", "#D94801", "#A63603", "#7F2704",
	),
	"YlOrBr": evenly(
		"#FFFFE5", "#FFF7BC", "#FEE391", "#FEC44F", "#FE9929",
		"#EC7014", "#CC4C02", "#993404", "#662506",
	),
	"OrRd": evenly(
		"#FFF7EC", "#FEE8C8", "#FDD49E", "#FDBB84", "#FC8D59",
		"#EF6548", "#D7301F", "#B30000", "#7F0000",
	),
	"PuRd": evenly(
		"#F7F4F9", "#E7E1EF", "#D4B9DA", "#C994C7", "#DF65B0",
		"#E7298A", "#CE1256", "#980043", "#67001F",
	),
	"RdPu": evenly(
		"#FFF7F3", "#FDE0DD", "#FCC5C0", "#FA9FB5", "#F768A1",
		"#DD3497", "#AE017E", "#7A0177", "#49006A",
	),
	"BuPu": evenly(
		"#F7FCFD", "#E0ECF4", "#BFD3E6", "#9EBCDA", "#8C96C6",
		"#8C6BB1", "#88419D", "#810F7C", "#4D004B",
	),
	"GnBu": evenly(
		"#F7FCF0", "#E0F3DB", "#CCEBC5", "#A8DDB5", "#7BCCC4",
		"#4EB3D3", "#2B8CBE", "#0868AC", "#084081",
	),
	"PuBu": evenly(
		"#FFF7FB", "#ECE7F2", "#D0D1E6", "#A6BDDB", "#74A9CF",
		"#3690C0", "#0570B0", "#045A8D", "#023858",
	),
	"YlGnBu": evenly(
		"#FFFFD9", "#EDF8B1", "#C7E9B4", "#7FCDBB", "#41B6C4",
		"#1D91C0", "#225EA8", "#253494", "#081D58",
	),
	"PuBuGn": evenly(
		"#FFF7FB", "#ECE2F0", "#D0D1E6", "#A6BDDB", "#67A9CF",
		"#3690C0", "#02818A", "#016C59", "#014636",
	),
	"BuGn": evenly(
		"#F7FCFD", "#E5F5F9", "#CCECE6", "#99D8C9", "#66C2A4",
		"#41AE76", "#238B45", "#006D2C", "#00441B",
	),
	"YlGn": evenly(
		"#FFFFE5", "#F7FCB9", "#D9F0A3", "#ADDD8E", "#78C679",
		"#41AB5D", "#238443", "#006837", "#004529",
	),
}

// Perceptually uniform scales, dark to light.
var uniform = map[string]Gradient{
	"viridis": evenly(
		"#440154", "#482374", "#404387", "#345E8D", "#29788E",
		"#20908C", "#22A784", "#44BE70", "#79D151", "#BDDE26",
		"#FDE725",
	),
	"plasma": evenly(
		"#0D0887", "#4B03A1", "#7D03A8", "#A82296", "#CB4679",
		"#E56B5D", "#F89441", "#FDC328", "#F0F921",
	),
	"inferno": evenly(
		"#000004", "#280B54", "#65156E", "#9F2A63", "#D44842",
		"#F57D15", "#FAC127", "#FCFFA4",
	),
	"magma": evenly(
		"#000004", "#1C1044", "#4F127B", "#812581", "#B5367A",
		"#E55064", "#FB8761", "#FEC287", "#FCFDBF",
	),
	"cividis": evenly(
		"#00204D", "#414D6B", "#7C7B78", "#BCAF6F", "#FFEA46",
	),
}
