package boulder

// Default probability tables loaded at the start of every frame that does
// not inherit them. Rows are in threshold form; see cdf.go.

var defaultMvCdfs = MvCdfs{
	Joint: [4]uint16{4096, 11264, 19328, 0},
	Class: [2][11]uint16{
		{28672, 30976, 31858, 32320, 32551, 32656, 32740, 32757, 32762, 32767, 0},
		{28672, 30976, 31858, 32320, 32551, 32656, 32740, 32757, 32762, 32767, 0},
	},
	Class0Bit: [2][2]uint16{
		{27648, 0},
		{27648, 0},
	},
	Class0Fr: [2][2][4]uint16{
		{
			{16384, 24576, 26624, 0},
			{12288, 21248, 24128, 0},
		},
		{
			{16384, 24576, 26624, 0},
			{12288, 21248, 24128, 0},
		},
	},
	Class0Hp: [2][2]uint16{
		{20480, 0},
		{20480, 0},
	},
	Sign: [2][2]uint16{
		{16384, 0},
		{16384, 0},
	},
	Bit: [2][10][2]uint16{
		{
			{17408, 0},
			{17920, 0},
			{18944, 0},
			{20480, 0},
			{22528, 0},
			{24576, 0},
			{28672, 0},
			{29952, 0},
			{29952, 0},
			{30720, 0},
		},
		{
			{17408, 0},
			{17920, 0},
			{18944, 0},
			{20480, 0},
			{22528, 0},
			{24576, 0},
			{28672, 0},
			{29952, 0},
			{29952, 0},
			{30720, 0},
		},
	},
	Fr: [2][4]uint16{
		{8192, 17408, 21248, 0},
		{8192, 17408, 21248, 0},
	},
	Hp: [2][2]uint16{
		{16384, 0},
		{16384, 0},
	},
}

var defaultNonCoeffCdfs = NonCoeffCdfs{
	IntraFrameYMode: [5][5][13]uint16{
		{
			{15588, 17027, 19338, 20218, 20682, 21110, 21825, 23244, 24189, 28165, 29093, 30466, 0},
			{12016, 18066, 19516, 20303, 20719, 21444, 21888, 23032, 24434, 28658, 30172, 31409, 0},
			{10052, 10771, 22296, 22788, 23055, 23239, 24133, 25620, 26160, 29336, 29929, 31567, 0},
			{14091, 15406, 16442, 18808, 19136, 19546, 19998, 22096, 24746, 29585, 30958, 32462, 0},
			{12122, 13265, 15603, 16501, 18609, 20033, 22391, 25583, 26437, 30261, 31073, 32475, 0},
		},
		{
			{10023, 19585, 20848, 21440, 21832, 22760, 23089, 24023, 25381, 29014, 30482, 31436, 0},
			{5983, 24099, 24560, 24886, 25066, 25795, 25913, 26423, 27610, 29905, 31276, 31794, 0},
			{7444, 12781, 20177, 20728, 21077, 21607, 22170, 23405, 24469, 27915, 29090, 30492, 0},
			{8537, 14689, 15432, 17087, 17408, 18172, 18408, 19825, 24649, 29153, 31096, 32210, 0},
			{7543, 14231, 15496, 16195, 17905, 20717, 21984, 24516, 26001, 29675, 30981, 31994, 0},
		},
		{
			{12613, 13591, 21383, 22004, 22312, 22577, 23401, 25055, 25729, 29538, 30305, 32077, 0},
			{9687, 13470, 18506, 19230, 19604, 20147, 20695, 22062, 23219, 27743, 29211, 30907, 0},
			{6183, 6505, 26024, 26252, 26366, 26434, 27082, 28354, 28555, 30467, 30794, 32086, 0},
			{10718, 11734, 14954, 17224, 17565, 17924, 18561, 21523, 23878, 28975, 30287, 32252, 0},
			{9194, 9858, 16501, 17263, 18424, 19171, 21563, 25961, 26561, 30072, 30737, 32463, 0},
		},
		{
			{12602, 14399, 15488, 18381, 18778, 19315, 19724, 21419, 25060, 29696, 30917, 32409, 0},
			{8203, 13821, 14524, 17105, 17439, 18131, 18404, 19468, 25225, 29485, 31158, 32342, 0},
			{8451, 9731, 15004, 17643, 18012, 18425, 19070, 21538, 24605, 29118, 30078, 32018, 0},
			{7714, 9048, 9516, 16667, 16817, 16994, 17153, 18767, 26743, 30389, 31536, 32528, 0},
			{8843, 10280, 11496, 15317, 16652, 17943, 19108, 22718, 25769, 29953, 30983, 32485, 0},
		},
		{
			{12578, 13671, 15979, 16834, 19075, 20913, 22989, 25449, 26219, 30214, 31150, 32477, 0},
			{9563, 13626, 15080, 15892, 17756, 20863, 22207, 24236, 25380, 29653, 31143, 32277, 0},
			{8356, 8901, 17616, 18256, 19350, 20106, 22598, 25947, 26466, 29900, 30523, 32261, 0},
			{10835, 11815, 13124, 16042, 17018, 18039, 18947, 22753, 24615, 29489, 30883, 32482, 0},
			{7618, 8288, 9859, 10509, 15386, 18657, 22903, 28776, 29180, 31355, 31802, 32593, 0},
		},
	},
	YMode: [4][13]uint16{
		{22801, 23489, 24293, 24756, 25601, 26123, 26606, 27418, 27945, 29228, 29685, 30349, 0},
		{18673, 19845, 22631, 23318, 23950, 24649, 25527, 27364, 28152, 29701, 29984, 30852, 0},
		{19770, 20979, 23396, 23939, 24241, 24654, 25136, 27073, 27830, 29360, 29730, 30659, 0},
		{20155, 21301, 22838, 23178, 23261, 23533, 23703, 24804, 25352, 26575, 27016, 28049, 0},
	},
	UVModeCflNotAllowed: [13][13]uint16{
		{22631, 24152, 25378, 25661, 25986, 26520, 27055, 27923, 28244, 30059, 30941, 31961, 0},
		{9513, 26881, 26973, 27046, 27118, 27664, 27739, 27824, 28359, 29505, 29800, 31796, 0},
		{9845, 9915, 28663, 28704, 28757, 28780, 29198, 29822, 29854, 30764, 31777, 32029, 0},
		{13639, 13897, 14171, 25331, 25606, 25727, 25953, 27148, 28577, 30612, 31355, 32493, 0},
		{9764, 9835, 9930, 9954, 25386, 27053, 27958, 28148, 28243, 31101, 31744, 32363, 0},
		{11825, 13589, 13677, 13720, 15048, 29213, 29301, 29458, 29711, 31161, 31441, 32550, 0},
		{14175, 14399, 16608, 16821, 17718, 17775, 28551, 30200, 30245, 31837, 32342, 32667, 0},
		{12885, 13038, 14978, 15590, 15673, 15748, 16176, 29128, 29267, 30643, 31961, 32461, 0},
		{12026, 13661, 13874, 15305, 15490, 15726, 15995, 16273, 28443, 30388, 30767, 32416, 0},
		{19052, 19840, 20579, 20916, 21150, 21467, 21885, 22719, 23174, 28861, 30379, 32175, 0},
		{18627, 19649, 20974, 21219, 21492, 21816, 22199, 23119, 23527, 27053, 31397, 32148, 0},
		{17026, 19004, 19997, 20339, 20586, 21103, 21349, 21907, 22482, 25896, 26541, 31819, 0},
		{12124, 13759, 14959, 14992, 15007, 15051, 15078, 15166, 15255, 15753, 16039, 16606, 0},
	},
	UVModeCflAllowed: [13][14]uint16{
		{10407, 11208, 12900, 13181, 13823, 14175, 14899, 15656, 15986, 20086, 20995, 22455, 24212, 0},
		{4532, 19780, 20057, 20215, 20428, 21071, 21199, 21451, 22099, 24228, 24693, 27032, 29472, 0},
		{5273, 5379, 20177, 20270, 20385, 20439, 20949, 21695, 21774, 23138, 24256, 24703, 26679, 0},
		{6740, 7167, 7662, 14152, 14536, 14785, 15034, 16741, 18371, 21520, 22206, 23389, 24182, 0},
		{4987, 5368, 5928, 6068, 19114, 20315, 21857, 22253, 22411, 24911, 25380, 26027, 26376, 0},
		{5370, 6889, 7247, 7393, 9498, 21114, 21402, 21753, 21981, 24780, 25386, 26517, 27176, 0},
		{4816, 4961, 7204, 7326, 8765, 8930, 20169, 20682, 20803, 23188, 23763, 24455, 24940, 0},
		{6608, 6740, 8529, 9049, 9257, 9356, 9735, 18827, 19059, 22336, 23204, 23964, 24793, 0},
		{5998, 7419, 7781, 8933, 9255, 9549, 9753, 10417, 18898, 22494, 23139, 24764, 25989, 0},
		{10660, 11298, 12550, 12957, 13322, 13624, 14040, 15004, 15534, 20714, 21789, 23443, 24861, 0},
		{10522, 11530, 12552, 12963, 13378, 13779, 14245, 15235, 15902, 20102, 22696, 23774, 25838, 0},
		{10099, 10691, 12639, 13049, 13386, 13665, 14125, 15163, 15636, 19676, 20474, 23519, 25208, 0},
		{3144, 5087, 7382, 7504, 7593, 7690, 7801, 8064, 8232, 9248, 9875, 10521, 29048, 0},
	},
	AngleDelta: [8][7]uint16{
		{2180, 5032, 7567, 22776, 26989, 30217, 0},
		{2301, 5608, 8801, 23487, 26974, 30330, 0},
		{3780, 11018, 13699, 19354, 23083, 31286, 0},
		{4581, 11226, 15147, 17138, 21834, 28397, 0},
		{1737, 10927, 14509, 19588, 22745, 28823, 0},
		{2664, 10176, 12485, 17650, 21600, 30495, 0},
		{2240, 11096, 15453, 20341, 22561, 28917, 0},
		{3605, 10428, 12459, 17676, 21244, 30655, 0},
	},
	Intrabc:     [2]uint16{30531, 0},
	PartitionW8: [4][4]uint16{
		{19132, 25510, 30392, 0},
		{13928, 19855, 28540, 0},
		{12522, 23679, 28629, 0},
		{9896, 18783, 25853, 0},
	},
	PartitionW16: [4][10]uint16{
		{15597, 20929, 24571, 26706, 27664, 28821, 29601, 30571, 31902, 0},
		{7925, 11043, 16785, 22470, 23971, 25043, 26651, 28701, 29834, 0},
		{5414, 13269, 15111, 20488, 22360, 24500, 25537, 26336, 32117, 0},
		{2662, 6362, 8614, 20860, 23053, 24778, 26436, 27829, 31171, 0},
	},
	PartitionW32: [4][10]uint16{
		{18462, 20920, 23124, 27647, 28227, 29049, 29519, 30178, 31544, 0},
		{7689, 9060, 12056, 24992, 25660, 26182, 26951, 28041, 29052, 0},
		{6015, 9009, 10062, 24544, 25409, 26545, 27071, 27526, 32047, 0},
		{1394, 2208, 2796, 28614, 29061, 29466, 29840, 30185, 31899, 0},
	},
	PartitionW64: [4][10]uint16{
		{20137, 21547, 23078, 29566, 29837, 30261, 30524, 30892, 31724, 0},
		{6732, 7490, 9497, 27944, 28250, 28515, 28969, 29630, 30104, 0},
		{5945, 7663, 8348, 28683, 29117, 29749, 30064, 30298, 32238, 0},
		{870, 1212, 1487, 31198, 31394, 31574, 31743, 31881, 32332, 0},
	},
	PartitionW128: [4][8]uint16{
		{27899, 28219, 28529, 32484, 32539, 32619, 32639, 0},
		{6607, 6990, 8268, 32060, 32219, 32338, 32371, 0},
		{5429, 6676, 7122, 32027, 32227, 32531, 32582, 0},
		{711, 966, 1172, 32448, 32538, 32617, 32664, 0},
	},
	SegmentId: [3][8]uint16{
		{5622, 7893, 16093, 18233, 27809, 28373, 32533, 0},
		{14274, 18230, 22557, 24935, 29980, 30851, 32344, 0},
		{27527, 28487, 28723, 28890, 32397, 32647, 32679, 0},
	},
	SegmentIdPredicted: [3][2]uint16{
		{16384, 0},
		{16384, 0},
		{16384, 0},
	},
	Tx8x8: [3][2]uint16{
		{19968, 0},
		{19968, 0},
		{24320, 0},
	},
	Tx16x16: [3][3]uint16{
		{12272, 30172, 0},
		{12272, 30172, 0},
		{18677, 30848, 0},
	},
	Tx32x32: [3][3]uint16{
		{12986, 15180, 0},
		{12986, 15180, 0},
		{24302, 25602, 0},
	},
	Tx64x64: [3][3]uint16{
		{5782, 11475, 0},
		{5782, 11475, 0},
		{16803, 22759, 0},
	},
	TxfmSplit: [21][2]uint16{
		{28581, 0},
		{23846, 0},
		{20847, 0},
		{24315, 0},
		{18196, 0},
		{12133, 0},
		{18791, 0},
		{10887, 0},
		{11005, 0},
		{27179, 0},
		{20004, 0},
		{11281, 0},
		{26549, 0},
		{19308, 0},
		{14224, 0},
		{28015, 0},
		{21546, 0},
		{14400, 0},
		{28165, 0},
		{22401, 0},
		{16088, 0},
	},
	FilterIntraMode: [5]uint16{8949, 12776, 17211, 29558, 0},
	FilterIntra:     [22][2]uint16{
		{4621, 0},
		{6743, 0},
		{5893, 0},
		{7866, 0},
		{12551, 0},
		{9394, 0},
		{12408, 0},
		{14301, 0},
		{12756, 0},
		{22343, 0},
		{16384, 0},
		{16384, 0},
		{16384, 0},
		{16384, 0},
		{16384, 0},
		{16384, 0},
		{12770, 0},
		{10368, 0},
		{20229, 0},
		{18101, 0},
		{16384, 0},
		{16384, 0},
	},
	InterpFilter: [16][3]uint16{
		{31935, 32720, 0},
		{5568, 32719, 0},
		{422, 2938, 0},
		{28244, 32608, 0},
		{31206, 31953, 0},
		{4862, 32121, 0},
		{770, 1152, 0},
		{20889, 25637, 0},
		{31910, 32724, 0},
		{4120, 32712, 0},
		{305, 2247, 0},
		{27403, 32636, 0},
		{31022, 32009, 0},
		{2963, 32093, 0},
		{601, 943, 0},
		{14969, 21398, 0},
	},
	MotionMode: [22][3]uint16{
		{10923, 21845, 0},
		{10923, 21845, 0},
		{10923, 21845, 0},
		{7651, 24760, 0},
		{4738, 24765, 0},
		{5391, 25528, 0},
		{19419, 26810, 0},
		{5123, 23606, 0},
		{11606, 24308, 0},
		{26260, 29116, 0},
		{20360, 28062, 0},
		{21679, 26830, 0},
		{29516, 30701, 0},
		{28898, 30397, 0},
		{30878, 31335, 0},
		{32507, 32558, 0},
		{10923, 21845, 0},
		{10923, 21845, 0},
		{28799, 31390, 0},
		{26431, 30774, 0},
		{28973, 31594, 0},
		{29742, 31203, 0},
	},
	NewMv: [6][2]uint16{
		{24035, 0},
		{16630, 0},
		{15339, 0},
		{8386, 0},
		{12222, 0},
		{4676, 0},
	},
	ZeroMv: [2][2]uint16{
		{2175, 0},
		{1054, 0},
	},
	RefMv: [6][2]uint16{
		{23974, 0},
		{24188, 0},
		{17848, 0},
		{28622, 0},
		{24312, 0},
		{19923, 0},
	},
	CompoundMode: [8][8]uint16{
		{7760, 13823, 15808, 17641, 19156, 20666, 26891, 0},
		{10730, 19452, 21145, 22749, 24039, 25131, 28724, 0},
		{10664, 20221, 21588, 22906, 24295, 25387, 28436, 0},
		{13298, 16984, 20471, 24182, 25067, 25736, 26422, 0},
		{18904, 23325, 25242, 27432, 27898, 28258, 30758, 0},
		{10725, 17454, 20124, 22820, 24195, 25168, 26046, 0},
		{17125, 24273, 25814, 27492, 28214, 28704, 30592, 0},
		{13046, 23214, 24505, 25942, 27435, 28442, 29330, 0},
	},
	DrlMode: [3][2]uint16{
		{13104, 0},
		{24560, 0},
		{18945, 0},
	},
	IsInter: [4][2]uint16{
		{806, 0},
		{16662, 0},
		{20186, 0},
		{26538, 0},
	},
	CompMode: [5][2]uint16{
		{26828, 0},
		{24035, 0},
		{12031, 0},
		{10640, 0},
		{2901, 0},
	},
	SkipMode: [3][2]uint16{
		{32621, 0},
		{20708, 0},
		{8127, 0},
	},
	Skip: [3][2]uint16{
		{31671, 0},
		{16515, 0},
		{4576, 0},
	},
	CompRef: [3][3][2]uint16{
		{
			{4946, 0},
			{9468, 0},
			{1503, 0},
		},
		{
			{19891, 0},
			{22441, 0},
			{15160, 0},
		},
		{
			{30731, 0},
			{31059, 0},
			{27544, 0},
		},
	},
	CompBwdRef: [3][2][2]uint16{
		{
			{2235, 0},
			{1423, 0},
		},
		{
			{17182, 0},
			{15175, 0},
		},
		{
			{30606, 0},
			{30489, 0},
		},
	},
	SingleRef: [3][6][2]uint16{
		{
			{4897, 0},
			{1555, 0},
			{4236, 0},
			{8650, 0},
			{904, 0},
			{1444, 0},
		},
		{
			{16973, 0},
			{16751, 0},
			{19647, 0},
			{24773, 0},
			{11014, 0},
			{15087, 0},
		},
		{
			{29744, 0},
			{30279, 0},
			{31194, 0},
			{31895, 0},
			{26875, 0},
			{30304, 0},
		},
	},
	CompRefType: [5][2]uint16{
		{1198, 0},
		{2070, 0},
		{9166, 0},
		{7499, 0},
		{22475, 0},
	},
	UniCompRef: [3][3][2]uint16{
		{
			{5284, 0},
			{3865, 0},
			{3128, 0},
		},
		{
			{23152, 0},
			{14173, 0},
			{15270, 0},
		},
		{
			{31774, 0},
			{25120, 0},
			{26710, 0},
		},
	},
	Mv:           [2]MvCdfs{defaultMvCdfs, defaultMvCdfs},
	PaletteYMode: [7][3][2]uint16{
		{
			{31676, 0},
			{3419, 0},
			{1261, 0},
		},
		{
			{31912, 0},
			{2859, 0},
			{980, 0},
		},
		{
			{31823, 0},
			{3400, 0},
			{781, 0},
		},
		{
			{32030, 0},
			{3561, 0},
			{904, 0},
		},
		{
			{32309, 0},
			{7337, 0},
			{1462, 0},
		},
		{
			{32265, 0},
			{4015, 0},
			{1521, 0},
		},
		{
			{32450, 0},
			{7946, 0},
			{129, 0},
		},
	},
	PaletteUVMode: [2][2]uint16{
		{32461, 0},
		{21488, 0},
	},
	PaletteYSize: [7][7]uint16{
		{7952, 13000, 18149, 21478, 25527, 29241, 0},
		{7139, 11421, 16195, 19544, 23666, 28073, 0},
		{7788, 12741, 17325, 20500, 24315, 28530, 0},
		{8271, 14064, 18246, 21564, 25071, 28533, 0},
		{12725, 19180, 21863, 24839, 27535, 30120, 0},
		{9711, 14888, 16923, 21052, 25661, 27875, 0},
		{14940, 20797, 21678, 24186, 27033, 28999, 0},
	},
	PaletteUVSize: [7][7]uint16{
		{8713, 19979, 27128, 29609, 31331, 32272, 0},
		{5839, 15573, 23581, 26947, 29848, 31700, 0},
		{4426, 11260, 17999, 21483, 25863, 29430, 0},
		{3228, 9464, 14993, 18089, 22523, 27420, 0},
		{3768, 8886, 13091, 17852, 22495, 27207, 0},
		{2464, 8451, 12861, 21632, 25525, 28555, 0},
		{1269, 5435, 10433, 18963, 21700, 25865, 0},
	},
	PaletteColor2: [2][5][2]uint16{
		{
			{28710, 0},
			{16384, 0},
			{10553, 0},
			{27036, 0},
			{31603, 0},
		},
		{
			{29089, 0},
			{16384, 0},
			{8713, 0},
			{29257, 0},
			{31610, 0},
		},
	},
	PaletteColor3: [2][5][3]uint16{
		{
			{27877, 30490, 0},
			{11532, 25697, 0},
			{6544, 30234, 0},
			{23018, 28072, 0},
			{31915, 32385, 0},
		},
		{
			{25257, 29145, 0},
			{12287, 27293, 0},
			{7033, 27960, 0},
			{20145, 25405, 0},
			{30608, 31639, 0},
		},
	},
	PaletteColor4: [2][5][4]uint16{
		{
			{25572, 28046, 30045, 0},
			{9478, 21590, 27256, 0},
			{7248, 26837, 29824, 0},
			{19167, 24486, 28349, 0},
			{31400, 31825, 32250, 0},
		},
		{
			{24210, 27175, 29903, 0},
			{9888, 22386, 27214, 0},
			{5901, 26053, 29293, 0},
			{18318, 22152, 28333, 0},
			{30459, 31136, 31926, 0},
		},
	},
	PaletteColor5: [2][5][5]uint16{
		{
			{24779, 26955, 28576, 30282, 0},
			{8669, 20364, 24073, 28093, 0},
			{4255, 27565, 29377, 31067, 0},
			{19864, 23674, 26716, 29530, 0},
			{31646, 31893, 32147, 32426, 0},
		},
		{
			{22980, 25479, 27781, 29986, 0},
			{8413, 21408, 24859, 28874, 0},
			{2257, 29449, 30594, 31598, 0},
			{19189, 21202, 25915, 28620, 0},
			{31844, 32044, 32281, 32518, 0},
		},
	},
	PaletteColor6: [2][5][6]uint16{
		{
			{23132, 25407, 26970, 28435, 30073, 0},
			{7443, 17242, 20717, 24762, 27982, 0},
			{6300, 24862, 26944, 28784, 30671, 0},
			{18916, 22895, 25267, 27435, 29652, 0},
			{31270, 31550, 31808, 32059, 32353, 0},
		},
		{
			{22217, 24567, 26637, 28683, 30548, 0},
			{7307, 16406, 19636, 24632, 28424, 0},
			{4441, 25064, 26879, 28942, 30919, 0},
			{17210, 20528, 23319, 26750, 29582, 0},
			{30674, 30953, 31396, 31735, 32207, 0},
		},
	},
	PaletteColor7: [2][5][7]uint16{
		{
			{23105, 25199, 26464, 27684, 28931, 30318, 0},
			{6950, 15447, 18952, 22681, 25567, 28563, 0},
			{7560, 23474, 25490, 27203, 28921, 30708, 0},
			{18544, 22373, 24457, 26195, 28119, 30045, 0},
			{31198, 31451, 31670, 31882, 32123, 32391, 0},
		},
		{
			{21239, 23168, 25044, 26962, 28705, 30506, 0},
			{6545, 15012, 18004, 21817, 25503, 28701, 0},
			{3448, 26295, 27437, 28704, 30126, 31442, 0},
			{15889, 18323, 21704, 24698, 26976, 29690, 0},
			{30988, 31204, 31479, 31734, 31983, 32325, 0},
		},
	},
	PaletteColor8: [2][5][8]uint16{
		{
			{21689, 23883, 25163, 26352, 27506, 28827, 30195, 0},
			{6892, 15385, 17840, 21606, 24287, 26753, 29204, 0},
			{5651, 23182, 25042, 26518, 27982, 29392, 30900, 0},
			{19349, 22578, 24418, 25994, 27524, 29031, 30448, 0},
			{31028, 31270, 31504, 31705, 31927, 32153, 32392, 0},
		},
		{
			{21442, 23288, 24758, 26246, 27649, 28980, 30563, 0},
			{5863, 14933, 17552, 20668, 23683, 26411, 29273, 0},
			{3415, 25810, 26877, 27990, 29223, 30394, 31618, 0},
			{17965, 20084, 22232, 23974, 26274, 28402, 30390, 0},
			{31190, 31329, 31516, 31679, 31825, 32026, 32322, 0},
		},
	},
	DeltaQ:       [4]uint16{28160, 32120, 32677, 0},
	DeltaLf:      [4]uint16{28160, 32120, 32677, 0},
	DeltaLfMulti: [4][4]uint16{
		{28160, 32120, 32677, 0},
		{28160, 32120, 32677, 0},
		{28160, 32120, 32677, 0},
		{28160, 32120, 32677, 0},
	},
	IntraTxTypeSet1: [2][13][7]uint16{
		{
			{1535, 8035, 9461, 12751, 23467, 27825, 0},
			{564, 3335, 9709, 10870, 18143, 28094, 0},
			{672, 3247, 3676, 11982, 19415, 23127, 0},
			{5279, 13885, 15487, 18044, 23527, 30252, 0},
			{4423, 6074, 7985, 10416, 25693, 29298, 0},
			{1486, 4241, 9460, 10662, 16456, 27694, 0},
			{439, 2838, 3522, 6737, 18058, 23754, 0},
			{1190, 4233, 4855, 11670, 20281, 24377, 0},
			{1045, 4312, 8647, 10159, 18644, 29335, 0},
			{202, 3734, 4747, 7298, 17127, 24016, 0},
			{447, 4312, 6819, 8884, 16010, 23858, 0},
			{277, 4369, 5255, 8905, 16465, 22271, 0},
			{3409, 5436, 10599, 15599, 19687, 24040, 0},
		},
		{
			{1870, 13742, 14530, 16498, 23770, 27698, 0},
			{326, 8796, 14632, 15079, 19272, 27486, 0},
			{484, 7576, 7712, 14443, 19159, 22591, 0},
			{1126, 15340, 15895, 17023, 20896, 30279, 0},
			{655, 4854, 5249, 5913, 22099, 27138, 0},
			{1299, 6458, 8885, 9290, 14851, 25497, 0},
			{311, 5295, 5552, 6885, 16107, 22672, 0},
			{883, 8059, 8270, 11258, 17289, 21549, 0},
			{741, 7580, 9318, 10345, 16688, 29046, 0},
			{110, 7406, 7915, 9195, 16041, 23329, 0},
			{363, 7974, 9357, 10673, 15629, 24474, 0},
			{153, 7647, 8112, 9936, 15307, 19996, 0},
			{3511, 6332, 11165, 15335, 19323, 23594, 0},
		},
	},
	IntraTxTypeSet2: [3][13][5]uint16{
		{
			{6554, 13107, 19661, 26214, 0},
			{6554, 13107, 19661, 26214, 0},
			{6554, 13107, 19661, 26214, 0},
			{6554, 13107, 19661, 26214, 0},
			{6554, 13107, 19661, 26214, 0},
			{6554, 13107, 19661, 26214, 0},
			{6554, 13107, 19661, 26214, 0},
			{6554, 13107, 19661, 26214, 0},
			{6554, 13107, 19661, 26214, 0},
			{6554, 13107, 19661, 26214, 0},
			{6554, 13107, 19661, 26214, 0},
			{6554, 13107, 19661, 26214, 0},
			{6554, 13107, 19661, 26214, 0},
		},
		{
			{6554, 13107, 19661, 26214, 0},
			{6554, 13107, 19661, 26214, 0},
			{6554, 13107, 19661, 26214, 0},
			{6554, 13107, 19661, 26214, 0},
			{6554, 13107, 19661, 26214, 0},
			{6554, 13107, 19661, 26214, 0},
			{6554, 13107, 19661, 26214, 0},
			{6554, 13107, 19661, 26214, 0},
			{6554, 13107, 19661, 26214, 0},
			{6554, 13107, 19661, 26214, 0},
			{6554, 13107, 19661, 26214, 0},
			{6554, 13107, 19661, 26214, 0},
			{6554, 13107, 19661, 26214, 0},
		},
		{
			{1127, 12814, 22772, 27483, 0},
			{145, 6761, 11980, 26667, 0},
			{362, 5887, 11678, 16725, 0},
			{385, 15213, 18587, 30693, 0},
			{25, 2914, 23134, 27903, 0},
			{60, 4470, 11749, 23991, 0},
			{37, 3332, 14511, 21448, 0},
			{157, 6320, 13036, 17439, 0},
			{119, 6719, 12906, 29396, 0},
			{47, 5537, 12576, 21499, 0},
			{269, 6076, 11258, 23115, 0},
			{83, 5615, 12001, 17228, 0},
			{1968, 5556, 12023, 18547, 0},
		},
	},
	InterTxTypeSet1: [2][16]uint16{
		{4458, 5560, 7695, 9709, 13330, 14789, 17537, 20266, 21504, 22848, 23934, 25474, 27727, 28915, 30631, 0},
		{1645, 2573, 4778, 5711, 7807, 8622, 10522, 15357, 17674, 20408, 22517, 25010, 27116, 28856, 30749, 0},
	},
	InterTxTypeSet2: [12]uint16{770, 2421, 5225, 12907, 15819, 18927, 21561, 24089, 26595, 28526, 30529, 0},
	InterTxTypeSet3: [4][2]uint16{
		{16384, 0},
		{4167, 0},
		{1998, 0},
		{748, 0},
	},
	CompGroupIdx: [6][2]uint16{
		{26607, 0},
		{22891, 0},
		{18840, 0},
		{24594, 0},
		{19934, 0},
		{22674, 0},
	},
	CompoundIdx: [6][2]uint16{
		{18244, 0},
		{12865, 0},
		{7053, 0},
		{13259, 0},
		{9334, 0},
		{4644, 0},
	},
	CompoundType: [22][2]uint16{
		{16384, 0},
		{16384, 0},
		{16384, 0},
		{23431, 0},
		{13171, 0},
		{11470, 0},
		{9770, 0},
		{9100, 0},
		{8233, 0},
		{6172, 0},
		{16384, 0},
		{16384, 0},
		{16384, 0},
		{16384, 0},
		{16384, 0},
		{16384, 0},
		{16384, 0},
		{16384, 0},
		{11820, 0},
		{7701, 0},
		{16384, 0},
		{16384, 0},
	},
	InterIntra: [4][2]uint16{
		{16384, 0},
		{26887, 0},
		{27597, 0},
		{30237, 0},
	},
	InterIntraMode: [4][4]uint16{
		{8192, 16384, 24576, 0},
		{1875, 11082, 27332, 0},
		{2473, 9996, 26388, 0},
		{4238, 11537, 25926, 0},
	},
	WedgeIndex: [22][16]uint16{
		{2048, 4096, 6144, 8192, 10240, 12288, 14336, 16384, 18432, 20480, 22528, 24576, 26624, 28672, 30720, 0},
		{2048, 4096, 6144, 8192, 10240, 12288, 14336, 16384, 18432, 20480, 22528, 24576, 26624, 28672, 30720, 0},
		{2048, 4096, 6144, 8192, 10240, 12288, 14336, 16384, 18432, 20480, 22528, 24576, 26624, 28672, 30720, 0},
		{2438, 4440, 6599, 8663, 11005, 12874, 15751, 18094, 20359, 22362, 24127, 25702, 27752, 29450, 31171, 0},
		{806, 3266, 6005, 6738, 7218, 7367, 7771, 14588, 16323, 17367, 18452, 19422, 22839, 26127, 29629, 0},
		{2779, 3738, 4683, 7213, 7775, 8017, 8655, 14357, 17939, 21332, 24520, 27470, 29456, 30529, 31656, 0},
		{1684, 3625, 5675, 7108, 9302, 11274, 14429, 17144, 19163, 20961, 22884, 24471, 26719, 28714, 30877, 0},
		{1142, 3491, 6277, 7314, 8089, 8355, 9023, 13624, 15369, 16730, 18114, 19313, 22521, 26012, 29550, 0},
		{2742, 4195, 5727, 8035, 8980, 9336, 10146, 14124, 17270, 20533, 23434, 25972, 27944, 29570, 31416, 0},
		{1727, 3948, 6101, 7796, 9841, 12344, 15766, 18944, 20638, 22038, 23963, 25311, 26988, 28766, 31012, 0},
		{2048, 4096, 6144, 8192, 10240, 12288, 14336, 16384, 18432, 20480, 22528, 24576, 26624, 28672, 30720, 0},
		{2048, 4096, 6144, 8192, 10240, 12288, 14336, 16384, 18432, 20480, 22528, 24576, 26624, 28672, 30720, 0},
		{2048, 4096, 6144, 8192, 10240, 12288, 14336, 16384, 18432, 20480, 22528, 24576, 26624, 28672, 30720, 0},
		{2048, 4096, 6144, 8192, 10240, 12288, 14336, 16384, 18432, 20480, 22528, 24576, 26624, 28672, 30720, 0},
		{2048, 4096, 6144, 8192, 10240, 12288, 14336, 16384, 18432, 20480, 22528, 24576, 26624, 28672, 30720, 0},
		{2048, 4096, 6144, 8192, 10240, 12288, 14336, 16384, 18432, 20480, 22528, 24576, 26624, 28672, 30720, 0},
		{2048, 4096, 6144, 8192, 10240, 12288, 14336, 16384, 18432, 20480, 22528, 24576, 26624, 28672, 30720, 0},
		{2048, 4096, 6144, 8192, 10240, 12288, 14336, 16384, 18432, 20480, 22528, 24576, 26624, 28672, 30720, 0},
		{154, 987, 1925, 2051, 2088, 2111, 2151, 23033, 23703, 24284, 24985, 25684, 27259, 28883, 30911, 0},
		{1135, 1322, 1493, 2635, 2696, 2737, 2770, 21016, 22935, 25057, 27251, 29173, 30089, 30960, 31933, 0},
		{2048, 4096, 6144, 8192, 10240, 12288, 14336, 16384, 18432, 20480, 22528, 24576, 26624, 28672, 30720, 0},
		{2048, 4096, 6144, 8192, 10240, 12288, 14336, 16384, 18432, 20480, 22528, 24576, 26624, 28672, 30720, 0},
	},
	WedgeInterIntra: [22][2]uint16{
		{16384, 0},
		{16384, 0},
		{16384, 0},
		{20036, 0},
		{24957, 0},
		{26704, 0},
		{27530, 0},
		{29564, 0},
		{29444, 0},
		{26872, 0},
		{16384, 0},
		{16384, 0},
		{16384, 0},
		{16384, 0},
		{16384, 0},
		{16384, 0},
		{16384, 0},
		{16384, 0},
		{16384, 0},
		{16384, 0},
		{16384, 0},
		{16384, 0},
	},
	UseObmc: [22][2]uint16{
		{16384, 0},
		{16384, 0},
		{16384, 0},
		{10437, 0},
		{9371, 0},
		{9301, 0},
		{17432, 0},
		{14423, 0},
		{15142, 0},
		{25817, 0},
		{22823, 0},
		{22083, 0},
		{30128, 0},
		{31014, 0},
		{31560, 0},
		{32638, 0},
		{16384, 0},
		{16384, 0},
		{23664, 0},
		{20901, 0},
		{24008, 0},
		{26879, 0},
	},
	CflSign:  [8]uint16{1418, 2123, 13340, 18405, 26972, 28343, 32294, 0},
	CflAlpha: [6][16]uint16{
		{7637, 20719, 31401, 32481, 32657, 32688, 32692, 32696, 32700, 32704, 32708, 32712, 32716, 32720, 32724, 0},
		{14365, 23603, 28135, 31168, 32167, 32395, 32487, 32573, 32620, 32647, 32668, 32672, 32676, 32680, 32684, 0},
		{11532, 22380, 28445, 31360, 32349, 32523, 32584, 32649, 32673, 32677, 32681, 32685, 32689, 32693, 32697, 0},
		{26990, 31402, 32282, 32571, 32692, 32696, 32700, 32704, 32708, 32712, 32716, 32720, 32724, 32728, 32732, 0},
		{17248, 26058, 28904, 30608, 31305, 31877, 32126, 32321, 32394, 32464, 32516, 32560, 32576, 32593, 32622, 0},
		{14738, 21678, 25779, 27901, 29024, 30302, 30980, 31843, 32144, 32413, 32520, 32594, 32622, 32656, 32660, 0},
	},
	UseWiener:       [2]uint16{11570, 0},
	UseSgrproj:      [2]uint16{16855, 0},
	RestorationType: [3]uint16{9413, 22581, 0},
}

// defaultCoeffCdfs is indexed by the quantizer bucket from coeffCdfQContext.
var defaultCoeffCdfs = [4]CoeffCdfs{
	{
		TxbSkip: [5][13][2]uint16{
			{
				{31849, 0},
				{5892, 0},
				{12112, 0},
				{21935, 0},
				{20289, 0},
				{27473, 0},
				{32487, 0},
				{7654, 0},
				{19473, 0},
				{29984, 0},
				{9961, 0},
				{30242, 0},
				{32117, 0},
			},
			{
				{31548, 0},
				{1549, 0},
				{10130, 0},
				{16656, 0},
				{18591, 0},
				{26308, 0},
				{32537, 0},
				{5403, 0},
				{18096, 0},
				{30003, 0},
				{16384, 0},
				{16384, 0},
				{16384, 0},
			},
			{
				{29957, 0},
				{5391, 0},
				{18039, 0},
				{23566, 0},
				{22431, 0},
				{25822, 0},
				{32197, 0},
				{3778, 0},
				{15336, 0},
				{28981, 0},
				{16384, 0},
				{16384, 0},
				{16384, 0},
			},
			{
				{17920, 0},
				{1818, 0},
				{7282, 0},
				{25273, 0},
				{10923, 0},
				{31554, 0},
				{32624, 0},
				{1366, 0},
				{15628, 0},
				{30462, 0},
				{146, 0},
				{5132, 0},
				{31657, 0},
			},
			{
				{6308, 0},
				{117, 0},
				{1638, 0},
				{2161, 0},
				{16384, 0},
				{10923, 0},
				{30247, 0},
				{16384, 0},
				{16384, 0},
				{16384, 0},
				{16384, 0},
				{16384, 0},
				{16384, 0},
			},
		},
		EobPt16: [2][2][5]uint16{
			{
				{840, 1039, 1980, 4895, 0},
				{370, 671, 1883, 4471, 0},
			},
			{
				{3247, 4950, 9688, 14563, 0},
				{1904, 3354, 7763, 14647, 0},
			},
		},
		EobPt32: [2][2][6]uint16{
			{
				{400, 520, 977, 2102, 6542, 0},
				{210, 405, 1315, 3326, 7537, 0},
			},
			{
				{2636, 4273, 7588, 11794, 20401, 0},
				{1786, 3179, 6902, 11357, 19054, 0},
			},
		},
		EobPt64: [2][2][7]uint16{
			{
				{329, 498, 1101, 1784, 3265, 7758, 0},
				{335, 730, 1459, 5494, 8755, 12997, 0},
			},
			{
				{3505, 5304, 10086, 13814, 17684, 23370, 0},
				{1563, 2700, 4876, 10911, 14706, 22480, 0},
			},
		},
		EobPt128: [2][2][8]uint16{
			{
				{219, 482, 1140, 2091, 3680, 6028, 12586, 0},
				{371, 699, 1254, 4830, 9479, 12562, 17497, 0},
			},
			{
				{5245, 7456, 12880, 15852, 20033, 23932, 27608, 0},
				{2054, 3472, 5869, 14232, 18242, 20590, 26752, 0},
			},
		},
		EobPt256: [2][2][9]uint16{
			{
				{310, 584, 1887, 3589, 6168, 8611, 11352, 15652, 0},
				{998, 1850, 2998, 5604, 17341, 19888, 22899, 25583, 0},
			},
			{
				{2520, 3240, 5952, 8870, 12577, 17558, 19954, 24168, 0},
				{2203, 4130, 7435, 10739, 20652, 23681, 25609, 27261, 0},
			},
		},
		EobPt512: [2][10]uint16{
			{641, 983, 3707, 5430, 10234, 14958, 18788, 23412, 26061, 0},
			{5095, 6446, 9996, 13354, 16017, 17986, 20919, 26129, 29140, 0},
		},
		EobPt1024: [2][11]uint16{
			{393, 421, 751, 1623, 3160, 6352, 13345, 18047, 22571, 25830, 0},
			{1865, 1988, 2930, 4242, 10533, 16538, 21354, 27255, 28546, 31784, 0},
		},
		EobExtra: [5][2][9][2]uint16{
			{
				{
					{16961, 0},
					{17223, 0},
					{7621, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
				},
				{
					{19069, 0},
					{22525, 0},
					{13377, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
				},
			},
			{
				{
					{20401, 0},
					{17025, 0},
					{12845, 0},
					{12873, 0},
					{14094, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
				},
				{
					{20681, 0},
					{20701, 0},
					{15250, 0},
					{15017, 0},
					{14928, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
				},
			},
			{
				{
					{23905, 0},
					{17194, 0},
					{16170, 0},
					{17695, 0},
					{13826, 0},
					{15810, 0},
					{12036, 0},
					{16384, 0},
					{16384, 0},
				},
				{
					{23959, 0},
					{20799, 0},
					{19021, 0},
					{16203, 0},
					{17886, 0},
					{14144, 0},
					{12010, 0},
					{16384, 0},
					{16384, 0},
				},
			},
			{
				{
					{27399, 0},
					{16327, 0},
					{18071, 0},
					{19584, 0},
					{20721, 0},
					{18432, 0},
					{19560, 0},
					{10150, 0},
					{8805, 0},
				},
				{
					{24932, 0},
					{20833, 0},
					{12027, 0},
					{16670, 0},
					{19914, 0},
					{15106, 0},
					{17662, 0},
					{13783, 0},
					{28756, 0},
				},
			},
			{
				{
					{23406, 0},
					{21845, 0},
					{18432, 0},
					{16384, 0},
					{17096, 0},
					{12561, 0},
					{17320, 0},
					{22395, 0},
					{21370, 0},
				},
				{
					{16384, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
				},
			},
		},
		DcSign: [2][3][2]uint16{
			{
				{16000, 0},
				{13056, 0},
				{18816, 0},
			},
			{
				{15232, 0},
				{12928, 0},
				{17280, 0},
			},
		},
		CoeffBaseEob: [5][2][4][3]uint16{
			{
				{
					{17837, 29055, 0},
					{29600, 31446, 0},
					{30844, 31878, 0},
					{24926, 28948, 0},
				},
				{
					{21365, 30026, 0},
					{30512, 32423, 0},
					{31658, 32621, 0},
					{29630, 31881, 0},
				},
			},
			{
				{
					{5717, 26477, 0},
					{30491, 31703, 0},
					{31550, 32158, 0},
					{29648, 31491, 0},
				},
				{
					{12608, 27820, 0},
					{30680, 32225, 0},
					{30809, 32335, 0},
					{31299, 32423, 0},
				},
			},
			{
				{
					{1786, 12612, 0},
					{30663, 31625, 0},
					{32339, 32468, 0},
					{31148, 31833, 0},
				},
				{
					{18857, 23865, 0},
					{31428, 32428, 0},
					{31744, 32373, 0},
					{31775, 32526, 0},
				},
			},
			{
				{
					{1787, 2532, 0},
					{30832, 31662, 0},
					{31824, 32682, 0},
					{32133, 32569, 0},
				},
				{
					{13751, 22235, 0},
					{32089, 32409, 0},
					{27084, 27920, 0},
					{29291, 32594, 0},
				},
			},
			{
				{
					{1725, 3449, 0},
					{31102, 31935, 0},
					{32457, 32613, 0},
					{32412, 32649, 0},
				},
				{
					{10923, 21845, 0},
					{10923, 21845, 0},
					{10923, 21845, 0},
					{10923, 21845, 0},
				},
			},
		},
		CoeffBase: [5][2][42][4]uint16{
			{
				{
					{4034, 8930, 12727, 0},
					{18082, 29741, 31877, 0},
					{12596, 26124, 30493, 0},
					{9446, 21118, 27005, 0},
					{6308, 15141, 21279, 0},
					{2463, 6357, 9783, 0},
					{20667, 30546, 31929, 0},
					{13043, 26123, 30134, 0},
					{8151, 18757, 24778, 0},
					{5255, 12839, 18632, 0},
					{2820, 7206, 11161, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{15736, 27553, 30604, 0},
					{11210, 23794, 28787, 0},
					{5947, 13874, 19701, 0},
					{4215, 9323, 13891, 0},
					{2833, 6462, 10059, 0},
					{19605, 30393, 31582, 0},
					{13523, 26252, 30248, 0},
					{8446, 18622, 24512, 0},
					{3818, 10343, 15974, 0},
					{1481, 4117, 6796, 0},
					{22649, 31302, 32190, 0},
					{14829, 27127, 30449, 0},
					{8313, 17702, 23304, 0},
					{3022, 8301, 12786, 0},
					{1536, 4412, 7184, 0},
					{22354, 29774, 31372, 0},
					{14723, 25472, 29214, 0},
					{6673, 13745, 18662, 0},
					{2068, 5766, 9322, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
				},
				{
					{6302, 16444, 21761, 0},
					{23040, 31538, 32475, 0},
					{15196, 28452, 31496, 0},
					{10020, 22946, 28514, 0},
					{6533, 16862, 23501, 0},
					{3538, 9816, 15076, 0},
					{24444, 31875, 32525, 0},
					{15881, 28924, 31635, 0},
					{9922, 22873, 28466, 0},
					{6527, 16966, 23691, 0},
					{4114, 11303, 17220, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{20201, 30770, 32209, 0},
					{14754, 28071, 31258, 0},
					{8378, 20186, 26517, 0},
					{5916, 15299, 21978, 0},
					{4268, 11583, 17901, 0},
					{24361, 32025, 32581, 0},
					{18673, 30105, 31943, 0},
					{10196, 22244, 27576, 0},
					{5495, 14349, 20417, 0},
					{2676, 7415, 11498, 0},
					{24678, 31958, 32585, 0},
					{18629, 29906, 31831, 0},
					{9364, 20724, 26315, 0},
					{4641, 12318, 18094, 0},
					{2758, 7387, 11579, 0},
					{25433, 31842, 32469, 0},
					{18795, 29289, 31411, 0},
					{7644, 17584, 23592, 0},
					{3408, 9014, 15047, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
				},
			},
			{
				{
					{4536, 10072, 14001, 0},
					{25459, 31416, 32206, 0},
					{16605, 28048, 30818, 0},
					{11008, 22857, 27719, 0},
					{6915, 16268, 22315, 0},
					{2625, 6812, 10537, 0},
					{24257, 31788, 32499, 0},
					{16880, 29454, 31879, 0},
					{11958, 25054, 29778, 0},
					{7916, 18718, 25084, 0},
					{3383, 8777, 13446, 0},
					{22720, 31603, 32393, 0},
					{14960, 28125, 31335, 0},
					{9731, 22210, 27928, 0},
					{6304, 15832, 22277, 0},
					{2910, 7818, 12166, 0},
					{20375, 30627, 32131, 0},
					{13904, 27284, 30887, 0},
					{9368, 21558, 27144, 0},
					{5937, 14966, 21119, 0},
					{2667, 7225, 11319, 0},
					{23970, 31470, 32378, 0},
					{17173, 29734, 32018, 0},
					{12795, 25441, 29965, 0},
					{8981, 19680, 25893, 0},
					{4728, 11372, 16902, 0},
					{24287, 31797, 32439, 0},
					{16703, 29145, 31696, 0},
					{10833, 23554, 28725, 0},
					{6468, 16566, 23057, 0},
					{2415, 6562, 10278, 0},
					{26610, 32395, 32659, 0},
					{18590, 30498, 32117, 0},
					{12420, 25756, 29950, 0},
					{7639, 18746, 24710, 0},
					{3001, 8086, 12347, 0},
					{25076, 32064, 32580, 0},
					{17946, 30128, 32028, 0},
					{12024, 24985, 29378, 0},
					{7517, 18390, 24304, 0},
					{3243, 8781, 13331, 0},
					{8192, 16384, 24576, 0},
				},
				{
					{6037, 16771, 21957, 0},
					{24774, 31704, 32426, 0},
					{16830, 28589, 31056, 0},
					{10602, 22828, 27760, 0},
					{6733, 16829, 23071, 0},
					{3250, 8914, 13556, 0},
					{25582, 32220, 32668, 0},
					{18659, 30342, 32223, 0},
					{12546, 26149, 30515, 0},
					{8420, 20451, 26801, 0},
					{4636, 12420, 18344, 0},
					{27581, 32362, 32639, 0},
					{18987, 30083, 31978, 0},
					{11327, 24248, 29084, 0},
					{7264, 17719, 24120, 0},
					{3995, 10768, 16169, 0},
					{25893, 31831, 32487, 0},
					{16577, 28587, 31379, 0},
					{10189, 22748, 28182, 0},
					{6832, 17094, 23556, 0},
					{3708, 10110, 15334, 0},
					{25904, 32282, 32656, 0},
					{19721, 30792, 32276, 0},
					{12819, 26243, 30411, 0},
					{8572, 20614, 26891, 0},
					{5364, 14059, 20467, 0},
					{26580, 32438, 32677, 0},
					{20852, 31225, 32340, 0},
					{12435, 25700, 29967, 0},
					{8691, 20825, 26976, 0},
					{4446, 12209, 17269, 0},
					{27350, 32429, 32696, 0},
					{21372, 30977, 32272, 0},
					{12673, 25270, 29853, 0},
					{9208, 20925, 26640, 0},
					{5018, 13351, 18732, 0},
					{27351, 32479, 32713, 0},
					{21398, 31209, 32387, 0},
					{12162, 25047, 29842, 0},
					{7896, 18691, 25319, 0},
					{4670, 12882, 18881, 0},
					{8192, 16384, 24576, 0},
				},
			},
			{
				{
					{5487, 10460, 13708, 0},
					{21597, 28303, 30674, 0},
					{11037, 21953, 26476, 0},
					{8147, 17962, 22952, 0},
					{5242, 13061, 18532, 0},
					{1889, 5208, 8182, 0},
					{26774, 32133, 32590, 0},
					{17844, 29564, 31767, 0},
					{11690, 24438, 29171, 0},
					{7542, 18215, 24459, 0},
					{2993, 8050, 12319, 0},
					{28023, 32328, 32591, 0},
					{18651, 30126, 31954, 0},
					{12164, 25146, 29589, 0},
					{7762, 18530, 24771, 0},
					{3492, 9183, 13920, 0},
					{27591, 32008, 32491, 0},
					{17149, 28853, 31510, 0},
					{11485, 24003, 28860, 0},
					{7697, 18086, 24210, 0},
					{3075, 7999, 12218, 0},
					{28268, 32482, 32654, 0},
					{19631, 31051, 32404, 0},
					{13860, 27260, 31020, 0},
					{9605, 21613, 27594, 0},
					{4876, 12162, 17908, 0},
					{27248, 32316, 32576, 0},
					{18955, 30457, 32075, 0},
					{11824, 23997, 28795, 0},
					{7346, 18196, 24647, 0},
					{3403, 9247, 14111, 0},
					{29711, 32655, 32735, 0},
					{21169, 31394, 32417, 0},
					{13487, 27198, 30957, 0},
					{8828, 21683, 27614, 0},
					{4270, 11451, 17038, 0},
					{28708, 32578, 32731, 0},
					{20120, 31241, 32482, 0},
					{13692, 27550, 31321, 0},
					{9418, 22514, 28439, 0},
					{4999, 13283, 19462, 0},
					{8192, 16384, 24576, 0},
				},
				{
					{5673, 14302, 19711, 0},
					{26251, 30701, 31834, 0},
					{12782, 23783, 27803, 0},
					{9127, 20657, 25808, 0},
					{6368, 16208, 21462, 0},
					{2465, 7177, 10822, 0},
					{29961, 32563, 32719, 0},
					{18318, 29891, 31949, 0},
					{11361, 24514, 29357, 0},
					{7900, 19603, 25607, 0},
					{4002, 10590, 15546, 0},
					{29637, 32310, 32595, 0},
					{18296, 29913, 31809, 0},
					{10144, 21515, 26871, 0},
					{5358, 14322, 20394, 0},
					{3067, 8362, 13346, 0},
					{28652, 32470, 32676, 0},
					{17538, 30771, 32209, 0},
					{13924, 26882, 30494, 0},
					{10496, 22837, 27869, 0},
					{7236, 16396, 21621, 0},
					{30743, 32687, 32746, 0},
					{23006, 31676, 32489, 0},
					{14494, 27828, 31120, 0},
					{10174, 22801, 28352, 0},
					{6242, 15281, 21043, 0},
					{25817, 32243, 32720, 0},
					{18618, 31367, 32325, 0},
					{13997, 28318, 31878, 0},
					{12255, 26534, 31383, 0},
					{9561, 21588, 28450, 0},
					{28188, 32635, 32724, 0},
					{22060, 32365, 32728, 0},
					{18102, 30690, 32528, 0},
					{14196, 28864, 31999, 0},
					{12262, 25792, 30865, 0},
					{24176, 32109, 32628, 0},
					{18280, 29681, 31963, 0},
					{10205, 23703, 29664, 0},
					{7889, 20025, 27676, 0},
					{6060, 16743, 23970, 0},
					{8192, 16384, 24576, 0},
				},
			},
			{
				{
					{5141, 7096, 8260, 0},
					{27186, 29022, 29789, 0},
					{6668, 12568, 15682, 0},
					{2172, 6181, 8638, 0},
					{1126, 3379, 4531, 0},
					{443, 1361, 2254, 0},
					{26083, 31153, 32436, 0},
					{13486, 24603, 28483, 0},
					{6508, 14840, 19910, 0},
					{3386, 8800, 13286, 0},
					{1530, 4322, 7054, 0},
					{29639, 32080, 32548, 0},
					{15897, 27552, 30290, 0},
					{8588, 20047, 25383, 0},
					{4889, 13339, 19269, 0},
					{2240, 6871, 10498, 0},
					{28165, 32197, 32517, 0},
					{20735, 30427, 31568, 0},
					{14325, 24671, 27692, 0},
					{5119, 12554, 17805, 0},
					{1810, 5441, 8261, 0},
					{31212, 32724, 32748, 0},
					{23352, 31766, 32545, 0},
					{14669, 27570, 31059, 0},
					{8492, 20894, 27272, 0},
					{3644, 10194, 15204, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
				},
				{
					{2461, 7013, 9371, 0},
					{24749, 29600, 30986, 0},
					{9466, 19037, 22417, 0},
					{3584, 9280, 14400, 0},
					{1505, 3929, 5433, 0},
					{677, 1500, 2736, 0},
					{23987, 30702, 32117, 0},
					{13554, 24571, 29263, 0},
					{6211, 14556, 21155, 0},
					{3135, 10972, 15625, 0},
					{2435, 7127, 11427, 0},
					{31300, 32532, 32550, 0},
					{14757, 30365, 31954, 0},
					{4405, 11612, 18553, 0},
					{580, 4132, 7322, 0},
					{1695, 10169, 14124, 0},
					{30008, 32282, 32591, 0},
					{19244, 30108, 31748, 0},
					{11180, 24158, 29555, 0},
					{5650, 14972, 19209, 0},
					{2114, 5109, 8456, 0},
					{31856, 32716, 32748, 0},
					{23012, 31664, 32572, 0},
					{13694, 26656, 30636, 0},
					{8142, 19508, 26093, 0},
					{4253, 10955, 16724, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
				},
			},
			{
				{
					{601, 983, 1311, 0},
					{18725, 23406, 28087, 0},
					{5461, 8192, 10923, 0},
					{3781, 15124, 21425, 0},
					{2587, 7761, 12072, 0},
					{106, 458, 810, 0},
					{22282, 29710, 31894, 0},
					{8508, 20926, 25984, 0},
					{3726, 12713, 18083, 0},
					{1620, 7112, 10893, 0},
					{729, 2236, 3495, 0},
					{30163, 32474, 32684, 0},
					{18304, 30464, 32000, 0},
					{11443, 26526, 29647, 0},
					{6007, 15292, 21299, 0},
					{2234, 6703, 8937, 0},
					{30954, 32177, 32571, 0},
					{17363, 29562, 31076, 0},
					{9686, 22464, 27410, 0},
					{8192, 16384, 21390, 0},
					{1755, 8046, 11264, 0},
					{31168, 32734, 32748, 0},
					{22486, 31441, 32471, 0},
					{12833, 25627, 29738, 0},
					{6980, 17379, 23122, 0},
					{3111, 8887, 13479, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
				},
				{
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
				},
			},
		},
		CoeffBr: [5][2][21][4]uint16{
			{
				{
					{14298, 20718, 24174, 0},
					{12536, 19601, 23789, 0},
					{8712, 15051, 19503, 0},
					{6170, 11327, 15434, 0},
					{4742, 8926, 12538, 0},
					{3803, 7317, 10546, 0},
					{1696, 3317, 4871, 0},
					{14392, 19951, 22756, 0},
					{15978, 23218, 26818, 0},
					{12187, 19474, 23889, 0},
					{9176, 15640, 20259, 0},
					{7068, 12655, 17028, 0},
					{5656, 10442, 14472, 0},
					{2580, 4992, 7244, 0},
					{12136, 18049, 21426, 0},
					{13784, 20721, 24481, 0},
					{10836, 17621, 21900, 0},
					{8372, 14444, 18847, 0},
					{6523, 11779, 16000, 0},
					{5337, 9898, 13760, 0},
					{3034, 5860, 8462, 0},
				},
				{
					{15967, 22905, 26286, 0},
					{13534, 20654, 24579, 0},
					{9504, 16092, 20535, 0},
					{6975, 12568, 16903, 0},
					{5364, 10091, 14020, 0},
					{4357, 8370, 11857, 0},
					{2506, 4934, 7218, 0},
					{23032, 28815, 30936, 0},
					{19540, 26704, 29719, 0},
					{15158, 22969, 27097, 0},
					{11408, 18865, 23650, 0},
					{8885, 15448, 20250, 0},
					{7108, 12853, 17416, 0},
					{4231, 8041, 11480, 0},
					{19823, 26490, 29156, 0},
					{18890, 25929, 28932, 0},
					{15660, 23491, 27433, 0},
					{12147, 19776, 24488, 0},
					{9728, 16774, 21649, 0},
					{7919, 14277, 19066, 0},
					{5440, 10170, 14185, 0},
				},
			},
			{
				{
					{14406, 20862, 24414, 0},
					{11824, 18907, 23109, 0},
					{8257, 14393, 18803, 0},
					{5860, 10747, 14778, 0},
					{4475, 8486, 11984, 0},
					{3606, 6954, 10043, 0},
					{1736, 3410, 5048, 0},
					{14430, 20046, 22882, 0},
					{15593, 22899, 26709, 0},
					{12102, 19368, 23811, 0},
					{9059, 15584, 20262, 0},
					{6999, 12603, 17048, 0},
					{5684, 10497, 14553, 0},
					{2822, 5438, 7862, 0},
					{15785, 21585, 24359, 0},
					{18347, 25229, 28266, 0},
					{14974, 22487, 26389, 0},
					{11423, 18681, 23271, 0},
					{8863, 15350, 20008, 0},
					{7153, 12852, 17278, 0},
					{3707, 7036, 9982, 0},
				},
				{
					{15460, 21696, 25469, 0},
					{12170, 19249, 23191, 0},
					{8723, 15027, 19332, 0},
					{6428, 11704, 15874, 0},
					{4922, 9292, 13052, 0},
					{4139, 7695, 11010, 0},
					{2291, 4508, 6598, 0},
					{19856, 26920, 29828, 0},
					{17923, 25289, 28792, 0},
					{14278, 21968, 26297, 0},
					{10910, 18136, 22950, 0},
					{8423, 14815, 19627, 0},
					{6771, 12283, 16774, 0},
					{4074, 7750, 11081, 0},
					{19852, 26074, 28672, 0},
					{19371, 26110, 28989, 0},
					{16265, 23873, 27663, 0},
					{12758, 20378, 24952, 0},
					{10095, 17098, 21961, 0},
					{8250, 14628, 19451, 0},
					{5205, 9745, 13622, 0},
				},
			},
			{
				{
					{10563, 16233, 19763, 0},
					{9794, 16022, 19804, 0},
					{6750, 11945, 15759, 0},
					{4963, 9186, 12752, 0},
					{3845, 7435, 10627, 0},
					{3051, 6085, 8834, 0},
					{1311, 2596, 3830, 0},
					{11246, 16404, 19689, 0},
					{12315, 18911, 22731, 0},
					{10557, 17095, 21289, 0},
					{8136, 14006, 18249, 0},
					{6348, 11474, 15565, 0},
					{5196, 9655, 13400, 0},
					{2349, 4526, 6587, 0},
					{13337, 18730, 21569, 0},
					{19306, 26071, 28882, 0},
					{15952, 23540, 27254, 0},
					{12409, 19934, 24430, 0},
					{9760, 16706, 21389, 0},
					{8004, 14220, 18818, 0},
					{4138, 7794, 10961, 0},
				},
				{
					{10870, 16684, 20949, 0},
					{9664, 15230, 18680, 0},
					{6886, 12109, 15408, 0},
					{4825, 8900, 12305, 0},
					{3630, 7162, 10314, 0},
					{3036, 6429, 9387, 0},
					{1671, 3296, 4940, 0},
					{13819, 19159, 23026, 0},
					{11984, 19108, 23120, 0},
					{10690, 17210, 21663, 0},
					{7984, 14154, 18333, 0},
					{6868, 12294, 16124, 0},
					{5274, 8994, 12868, 0},
					{2988, 5771, 8424, 0},
					{19736, 26647, 29141, 0},
					{18933, 26070, 28984, 0},
					{15779, 23048, 27200, 0},
					{12638, 20061, 24532, 0},
					{10692, 17545, 22220, 0},
					{9217, 15251, 20054, 0},
					{5078, 9284, 12594, 0},
				},
			},
			{
				{
					{2331, 3662, 5244, 0},
					{2891, 4771, 6145, 0},
					{4598, 7623, 9729, 0},
					{3520, 6845, 9199, 0},
					{3417, 6119, 9324, 0},
					{2601, 5412, 7385, 0},
					{600, 1173, 1744, 0},
					{7672, 13286, 17469, 0},
					{4232, 7792, 10793, 0},
					{2915, 5317, 7397, 0},
					{2318, 4356, 6152, 0},
					{2127, 4000, 5554, 0},
					{1850, 3478, 5275, 0},
					{977, 1933, 2843, 0},
					{18280, 24387, 27989, 0},
					{15852, 22671, 26185, 0},
					{13845, 20951, 24789, 0},
					{11055, 17966, 22129, 0},
					{9138, 15422, 19801, 0},
					{7454, 13145, 17456, 0},
					{3370, 6393, 9013, 0},
				},
				{
					{5842, 9229, 10838, 0},
					{2313, 3491, 4276, 0},
					{2998, 6104, 7496, 0},
					{2420, 7447, 9868, 0},
					{3034, 8495, 10923, 0},
					{4076, 8937, 10975, 0},
					{1086, 2370, 3299, 0},
					{9714, 17254, 20444, 0},
					{8543, 13698, 17123, 0},
					{4918, 9007, 11910, 0},
					{4129, 7532, 10553, 0},
					{2364, 5533, 8058, 0},
					{1834, 3546, 5563, 0},
					{1473, 2908, 4133, 0},
					{15405, 21193, 25619, 0},
					{15691, 21952, 26561, 0},
					{12962, 19194, 24165, 0},
					{10272, 17855, 22129, 0},
					{8588, 15270, 20718, 0},
					{8682, 14669, 19500, 0},
					{4870, 9636, 13205, 0},
				},
			},
			{
				{
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
				},
				{
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
				},
			},
		},
	},
	{
		TxbSkip: [5][13][2]uint16{
			{
				{30371, 0},
				{7570, 0},
				{13155, 0},
				{20751, 0},
				{20969, 0},
				{27067, 0},
				{32013, 0},
				{5495, 0},
				{17942, 0},
				{28280, 0},
				{16384, 0},
				{16384, 0},
				{16384, 0},
			},
			{
				{31782, 0},
				{1836, 0},
				{10689, 0},
				{17604, 0},
				{21622, 0},
				{27518, 0},
				{32399, 0},
				{4419, 0},
				{16294, 0},
				{28345, 0},
				{16384, 0},
				{16384, 0},
				{16384, 0},
			},
			{
				{31901, 0},
				{10311, 0},
				{18047, 0},
				{24806, 0},
				{23288, 0},
				{27914, 0},
				{32296, 0},
				{4215, 0},
				{15756, 0},
				{28341, 0},
				{16384, 0},
				{16384, 0},
				{16384, 0},
			},
			{
				{26726, 0},
				{1045, 0},
				{11703, 0},
				{20590, 0},
				{18554, 0},
				{25970, 0},
				{31938, 0},
				{5583, 0},
				{21313, 0},
				{29390, 0},
				{641, 0},
				{22265, 0},
				{31452, 0},
			},
			{
				{26584, 0},
				{188, 0},
				{8847, 0},
				{24519, 0},
				{22938, 0},
				{30583, 0},
				{32608, 0},
				{16384, 0},
				{16384, 0},
				{16384, 0},
				{16384, 0},
				{16384, 0},
				{16384, 0},
			},
		},
		EobPt16: [2][2][5]uint16{
			{
				{2125, 2551, 5165, 8946, 0},
				{513, 765, 1859, 6339, 0},
			},
			{
				{7637, 9498, 14259, 19108, 0},
				{2497, 4096, 8866, 16993, 0},
			},
		},
		EobPt32: [2][2][6]uint16{
			{
				{989, 1249, 2019, 4151, 10785, 0},
				{313, 441, 1099, 2917, 8562, 0},
			},
			{
				{8394, 10352, 13932, 18855, 26014, 0},
				{2578, 4124, 8181, 13670, 24234, 0},
			},
		},
		EobPt64: [2][2][7]uint16{
			{
				{1260, 1446, 2253, 3712, 6652, 13369, 0},
				{401, 605, 1029, 2563, 5845, 12626, 0},
			},
			{
				{8609, 10612, 14624, 18714, 22614, 29024, 0},
				{1923, 3127, 5867, 9703, 14277, 27100, 0},
			},
		},
		EobPt128: [2][2][8]uint16{
			{
				{685, 933, 1488, 2714, 4766, 8562, 19254, 0},
				{217, 352, 618, 2303, 5261, 9969, 17472, 0},
			},
			{
				{8045, 11200, 15497, 19595, 23948, 27408, 30938, 0},
				{2310, 4160, 7471, 14997, 17931, 20768, 30240, 0},
			},
		},
		EobPt256: [2][2][9]uint16{
			{
				{1448, 2109, 4151, 6263, 9329, 13260, 17944, 23300, 0},
				{399, 1019, 1749, 3038, 10444, 15546, 22739, 27294, 0},
			},
			{
				{6402, 8148, 12623, 15072, 18728, 22847, 26447, 29377, 0},
				{1674, 3252, 5734, 10159, 22397, 23802, 24821, 30940, 0},
			},
		},
		EobPt512: [2][10]uint16{
			{1230, 2278, 5035, 7776, 11871, 15346, 19590, 24584, 28749, 0},
			{7265, 9979, 15819, 19250, 21780, 23846, 26478, 28396, 31811, 0},
		},
		EobPt1024: [2][11]uint16{
			{696, 948, 3145, 5702, 9706, 13217, 17851, 21856, 25692, 28034, 0},
			{2672, 3591, 9330, 17084, 22725, 24284, 26527, 28027, 28377, 30876, 0},
		},
		EobExtra: [5][2][9][2]uint16{
			{
				{
					{17471, 0},
					{20223, 0},
					{11357, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
				},
				{
					{20335, 0},
					{21667, 0},
					{14818, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
				},
			},
			{
				{
					{20430, 0},
					{20662, 0},
					{15367, 0},
					{16970, 0},
					{14657, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
				},
				{
					{22117, 0},
					{22028, 0},
					{18650, 0},
					{16042, 0},
					{15885, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
				},
			},
			{
				{
					{22409, 0},
					{21012, 0},
					{15650, 0},
					{17395, 0},
					{15469, 0},
					{20205, 0},
					{19511, 0},
					{16384, 0},
					{16384, 0},
				},
				{
					{24220, 0},
					{22480, 0},
					{17737, 0},
					{18916, 0},
					{19268, 0},
					{18412, 0},
					{18844, 0},
					{16384, 0},
					{16384, 0},
				},
			},
			{
				{
					{25991, 0},
					{20314, 0},
					{17731, 0},
					{19678, 0},
					{18649, 0},
					{17307, 0},
					{21798, 0},
					{17549, 0},
					{15630, 0},
				},
				{
					{26585, 0},
					{21469, 0},
					{20432, 0},
					{17735, 0},
					{19280, 0},
					{15235, 0},
					{20297, 0},
					{22471, 0},
					{28997, 0},
				},
			},
			{
				{
					{26605, 0},
					{11304, 0},
					{16726, 0},
					{16560, 0},
					{20866, 0},
					{23524, 0},
					{19878, 0},
					{13469, 0},
					{23084, 0},
				},
				{
					{16384, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
				},
			},
		},
		DcSign: [2][3][2]uint16{
			{
				{16000, 0},
				{13056, 0},
				{18816, 0},
			},
			{
				{15232, 0},
				{12928, 0},
				{17280, 0},
			},
		},
		CoeffBaseEob: [5][2][4][3]uint16{
			{
				{
					{17560, 29888, 0},
					{29671, 31549, 0},
					{31007, 32056, 0},
					{27286, 30006, 0},
				},
				{
					{26594, 31212, 0},
					{31208, 32582, 0},
					{31835, 32637, 0},
					{30595, 32206, 0},
				},
			},
			{
				{
					{15239, 29932, 0},
					{31315, 32095, 0},
					{32130, 32434, 0},
					{30864, 31996, 0},
				},
				{
					{26279, 30968, 0},
					{31142, 32495, 0},
					{31713, 32540, 0},
					{31929, 32594, 0},
				},
			},
			{
				{
					{2644, 25198, 0},
					{32038, 32451, 0},
					{32639, 32695, 0},
					{32166, 32518, 0},
				},
				{
					{17187, 27668, 0},
					{31714, 32550, 0},
					{32283, 32678, 0},
					{31930, 32563, 0},
				},
			},
			{
				{
					{1044, 2257, 0},
					{30755, 31923, 0},
					{32208, 32693, 0},
					{32244, 32615, 0},
				},
				{
					{21317, 26207, 0},
					{29133, 30868, 0},
					{29311, 31231, 0},
					{29657, 31087, 0},
				},
			},
			{
				{
					{478, 1834, 0},
					{31005, 31987, 0},
					{32317, 32724, 0},
					{30865, 32648, 0},
				},
				{
					{10923, 21845, 0},
					{10923, 21845, 0},
					{10923, 21845, 0},
					{10923, 21845, 0},
				},
			},
		},
		CoeffBase: [5][2][42][4]uint16{
			{
				{
					{6041, 11854, 15927, 0},
					{20326, 30905, 32251, 0},
					{14164, 26831, 30725, 0},
					{9760, 20647, 26585, 0},
					{6416, 14953, 21219, 0},
					{2966, 7151, 10891, 0},
					{23567, 31374, 32254, 0},
					{14978, 27416, 30946, 0},
					{9434, 20225, 26254, 0},
					{6658, 14558, 20535, 0},
					{3916, 8677, 12989, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{18088, 29545, 31587, 0},
					{13062, 25843, 30073, 0},
					{8940, 16827, 22251, 0},
					{7654, 13220, 17973, 0},
					{5733, 10316, 14456, 0},
					{22879, 31388, 32114, 0},
					{15215, 27993, 30955, 0},
					{9397, 19445, 24978, 0},
					{3442, 9813, 15344, 0},
					{1368, 3936, 6532, 0},
					{25494, 32033, 32406, 0},
					{16772, 27963, 30718, 0},
					{9419, 18165, 23260, 0},
					{2677, 7501, 11797, 0},
					{1516, 4344, 7170, 0},
					{26556, 31454, 32101, 0},
					{17128, 27035, 30108, 0},
					{8324, 15344, 20249, 0},
					{1903, 5696, 9469, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
				},
				{
					{8455, 19003, 24368, 0},
					{23563, 32021, 32604, 0},
					{16237, 29446, 31935, 0},
					{10724, 23999, 29358, 0},
					{6725, 17528, 24416, 0},
					{3927, 10927, 16825, 0},
					{26313, 32288, 32634, 0},
					{17430, 30095, 32095, 0},
					{11116, 24606, 29679, 0},
					{7195, 18384, 25269, 0},
					{4726, 12852, 19315, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{22822, 31648, 32483, 0},
					{16724, 29633, 31929, 0},
					{10261, 23033, 28725, 0},
					{7029, 17840, 24528, 0},
					{4867, 13886, 21502, 0},
					{25298, 31892, 32491, 0},
					{17809, 29330, 31512, 0},
					{9668, 21329, 26579, 0},
					{4774, 12956, 18976, 0},
					{2322, 7030, 11540, 0},
					{25472, 31920, 32543, 0},
					{17957, 29387, 31632, 0},
					{9196, 20593, 26400, 0},
					{4680, 12705, 19202, 0},
					{2917, 8456, 13436, 0},
					{26471, 32059, 32574, 0},
					{18458, 29783, 31909, 0},
					{8400, 19464, 25956, 0},
					{3812, 10973, 17206, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
				},
			},
			{
				{
					{6779, 13743, 17678, 0},
					{24806, 31797, 32457, 0},
					{17616, 29047, 31372, 0},
					{11063, 23175, 28003, 0},
					{6521, 16110, 22324, 0},
					{2764, 7504, 11654, 0},
					{25266, 32367, 32637, 0},
					{19054, 30553, 32175, 0},
					{12139, 25212, 29807, 0},
					{7311, 18162, 24704, 0},
					{3397, 9164, 14074, 0},
					{25988, 32208, 32522, 0},
					{16253, 28912, 31526, 0},
					{9151, 21387, 27372, 0},
					{5688, 14915, 21496, 0},
					{2717, 7627, 12004, 0},
					{23144, 31855, 32443, 0},
					{16070, 28491, 31325, 0},
					{8702, 20467, 26517, 0},
					{5243, 13956, 20367, 0},
					{2621, 7335, 11567, 0},
					{26636, 32340, 32630, 0},
					{19990, 31050, 32341, 0},
					{13243, 26105, 30315, 0},
					{8588, 19521, 25918, 0},
					{4717, 11585, 17304, 0},
					{25844, 32292, 32582, 0},
					{19090, 30635, 32097, 0},
					{11963, 24546, 28939, 0},
					{6218, 16087, 22354, 0},
					{2340, 6608, 10426, 0},
					{28046, 32576, 32694, 0},
					{21178, 31313, 32296, 0},
					{13486, 26184, 29870, 0},
					{7149, 17871, 23723, 0},
					{2833, 7958, 12259, 0},
					{27710, 32528, 32686, 0},
					{20674, 31076, 32268, 0},
					{12413, 24955, 29243, 0},
					{6676, 16927, 23097, 0},
					{2966, 8333, 12919, 0},
					{8192, 16384, 24576, 0},
				},
				{
					{8639, 19339, 24429, 0},
					{24404, 31837, 32525, 0},
					{16997, 29425, 31784, 0},
					{11253, 24234, 29149, 0},
					{6751, 17394, 24028, 0},
					{3490, 9830, 15191, 0},
					{26283, 32471, 32714, 0},
					{19599, 31168, 32442, 0},
					{13146, 26954, 30893, 0},
					{8214, 20588, 26890, 0},
					{4699, 13081, 19300, 0},
					{28212, 32458, 32669, 0},
					{18594, 30316, 32100, 0},
					{11219, 24408, 29234, 0},
					{6865, 17656, 24149, 0},
					{3678, 10362, 16006, 0},
					{25825, 32136, 32616, 0},
					{17313, 29853, 32021, 0},
					{11197, 24471, 29472, 0},
					{6947, 17781, 24405, 0},
					{3768, 10660, 16261, 0},
					{27352, 32500, 32706, 0},
					{20850, 31468, 32469, 0},
					{14021, 27707, 31133, 0},
					{8964, 21748, 27838, 0},
					{5437, 14665, 21187, 0},
					{26304, 32492, 32698, 0},
					{20409, 31380, 32385, 0},
					{13682, 27222, 30632, 0},
					{8974, 21236, 26685, 0},
					{4234, 11665, 16934, 0},
					{26273, 32357, 32711, 0},
					{20672, 31242, 32441, 0},
					{14172, 27254, 30902, 0},
					{9870, 21898, 27275, 0},
					{5164, 13506, 19270, 0},
					{26725, 32459, 32728, 0},
					{20991, 31442, 32527, 0},
					{13071, 26434, 30811, 0},
					{8184, 20090, 26742, 0},
					{4803, 13255, 19895, 0},
					{8192, 16384, 24576, 0},
				},
			},
			{
				{
					{7555, 14942, 18501, 0},
					{24410, 31178, 32287, 0},
					{14394, 26738, 30253, 0},
					{8413, 19554, 25195, 0},
					{4766, 12924, 18785, 0},
					{2029, 5806, 9207, 0},
					{26776, 32364, 32663, 0},
					{18732, 29967, 31931, 0},
					{11005, 23786, 28852, 0},
					{6466, 16909, 23510, 0},
					{3044, 8638, 13419, 0},
					{29208, 32582, 32704, 0},
					{20068, 30857, 32208, 0},
					{12003, 25085, 29595, 0},
					{6947, 17750, 24189, 0},
					{3245, 9103, 14007, 0},
					{27359, 32465, 32669, 0},
					{19421, 30614, 32174, 0},
					{11915, 25010, 29579, 0},
					{6950, 17676, 24074, 0},
					{3007, 8473, 13096, 0},
					{29002, 32676, 32735, 0},
					{22102, 31849, 32576, 0},
					{14408, 28009, 31405, 0},
					{9027, 21679, 27931, 0},
					{4694, 12678, 18748, 0},
					{28216, 32528, 32682, 0},
					{20849, 31264, 32318, 0},
					{12756, 25815, 29751, 0},
					{7565, 18801, 24923, 0},
					{3509, 9533, 14477, 0},
					{30133, 32687, 32739, 0},
					{23063, 31910, 32515, 0},
					{14588, 28051, 31132, 0},
					{9085, 21649, 27457, 0},
					{4261, 11654, 17264, 0},
					{29518, 32691, 32748, 0},
					{22451, 31959, 32613, 0},
					{14864, 28722, 31700, 0},
					{9695, 22964, 28716, 0},
					{4932, 13358, 19502, 0},
					{8192, 16384, 24576, 0},
				},
				{
					{6465, 16958, 21688, 0},
					{25199, 31514, 32360, 0},
					{14774, 27149, 30607, 0},
					{9257, 21438, 26972, 0},
					{5723, 15183, 21882, 0},
					{3150, 8879, 13731, 0},
					{26989, 32262, 32682, 0},
					{17396, 29937, 32085, 0},
					{11387, 24901, 29784, 0},
					{7289, 18821, 25548, 0},
					{3734, 10577, 16086, 0},
					{29728, 32501, 32695, 0},
					{17431, 29701, 31903, 0},
					{9921, 22826, 28300, 0},
					{5896, 15434, 22068, 0},
					{3430, 9646, 14757, 0},
					{28614, 32511, 32705, 0},
					{19364, 30638, 32263, 0},
					{13129, 26254, 30402, 0},
					{8754, 20484, 26440, 0},
					{4378, 11607, 17110, 0},
					{30292, 32671, 32744, 0},
					{21780, 31603, 32501, 0},
					{14314, 27829, 31291, 0},
					{9611, 22327, 28263, 0},
					{4890, 13087, 19065, 0},
					{25862, 32567, 32733, 0},
					{20794, 32050, 32567, 0},
					{17243, 30625, 32254, 0},
					{13283, 27628, 31474, 0},
					{9669, 22532, 28918, 0},
					{27435, 32697, 32748, 0},
					{24922, 32390, 32714, 0},
					{21449, 31504, 32536, 0},
					{16392, 29729, 31832, 0},
					{11692, 24884, 29076, 0},
					{24193, 32290, 32735, 0},
					{18909, 31104, 32563, 0},
					{12236, 26841, 31403, 0},
					{8171, 21840, 29082, 0},
					{7224, 17280, 25275, 0},
					{8192, 16384, 24576, 0},
				},
			},
			{
				{
					{3078, 6839, 9890, 0},
					{13837, 20450, 24479, 0},
					{5914, 14222, 19328, 0},
					{3866, 10267, 14762, 0},
					{2612, 7208, 11042, 0},
					{1067, 2991, 4776, 0},
					{25817, 31646, 32529, 0},
					{13708, 26338, 30385, 0},
					{7328, 18585, 24870, 0},
					{4691, 13080, 19276, 0},
					{1825, 5253, 8352, 0},
					{29386, 32315, 32624, 0},
					{17160, 29001, 31360, 0},
					{9602, 21862, 27396, 0},
					{5915, 15772, 22148, 0},
					{2786, 7779, 12047, 0},
					{29246, 32450, 32663, 0},
					{18696, 29929, 31818, 0},
					{10510, 23369, 28560, 0},
					{6229, 16499, 23125, 0},
					{2608, 7448, 11705, 0},
					{30753, 32710, 32748, 0},
					{21638, 31487, 32503, 0},
					{12937, 26854, 30870, 0},
					{8182, 20596, 26970, 0},
					{3637, 10269, 15497, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
				},
				{
					{5244, 12150, 16906, 0},
					{20486, 26858, 29701, 0},
					{7756, 18317, 23735, 0},
					{3452, 9256, 13146, 0},
					{2020, 5206, 8229, 0},
					{1801, 4993, 7903, 0},
					{27051, 31858, 32531, 0},
					{15988, 27531, 30619, 0},
					{9188, 21484, 26719, 0},
					{6273, 17186, 23800, 0},
					{3108, 9355, 14764, 0},
					{31076, 32520, 32680, 0},
					{18119, 30037, 31850, 0},
					{10244, 22969, 27472, 0},
					{4692, 14077, 19273, 0},
					{3694, 11677, 17556, 0},
					{30060, 32581, 32720, 0},
					{21011, 30775, 32120, 0},
					{11931, 24820, 29289, 0},
					{7119, 17662, 24356, 0},
					{3833, 10706, 16304, 0},
					{31954, 32731, 32748, 0},
					{23913, 31724, 32489, 0},
					{15520, 28060, 31286, 0},
					{11517, 23008, 28571, 0},
					{6193, 14508, 20629, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
				},
			},
			{
				{
					{1035, 2807, 4156, 0},
					{13162, 18138, 20939, 0},
					{2696, 6633, 8755, 0},
					{1373, 4161, 6853, 0},
					{1099, 2746, 4716, 0},
					{340, 1021, 1599, 0},
					{22826, 30419, 32135, 0},
					{10395, 21762, 26942, 0},
					{4726, 12407, 17361, 0},
					{2447, 7080, 10593, 0},
					{1227, 3717, 6011, 0},
					{28156, 31424, 31934, 0},
					{16915, 27754, 30373, 0},
					{9148, 20990, 26431, 0},
					{5950, 15515, 21148, 0},
					{2492, 7327, 11526, 0},
					{30602, 32477, 32670, 0},
					{20026, 29955, 31568, 0},
					{11220, 23628, 28105, 0},
					{6652, 17019, 22973, 0},
					{3064, 8536, 13043, 0},
					{31769, 32724, 32748, 0},
					{22230, 30887, 32373, 0},
					{12234, 25079, 29731, 0},
					{7326, 18816, 25353, 0},
					{3933, 10907, 16616, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
				},
				{
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
				},
			},
		},
		CoeffBr: [5][2][21][4]uint16{
			{
				{
					{14995, 21341, 24749, 0},
					{13158, 20289, 24601, 0},
					{8941, 15326, 19876, 0},
					{6297, 11541, 15807, 0},
					{4817, 9029, 12776, 0},
					{3731, 7273, 10627, 0},
					{1847, 3617, 5354, 0},
					{14472, 19659, 22343, 0},
					{16806, 24162, 27533, 0},
					{12900, 20404, 24713, 0},
					{9411, 16112, 20797, 0},
					{7056, 12697, 17148, 0},
					{5544, 10339, 14460, 0},
					{2954, 5704, 8319, 0},
					{12464, 18071, 21354, 0},
					{15482, 22528, 26034, 0},
					{12070, 19269, 23624, 0},
					{8953, 15406, 20106, 0},
					{7027, 12730, 17220, 0},
					{5887, 10913, 15140, 0},
					{3793, 7278, 10447, 0},
				},
				{
					{15571, 22232, 25749, 0},
					{14506, 21575, 25374, 0},
					{10189, 17089, 21569, 0},
					{7316, 13301, 17915, 0},
					{5783, 10912, 15190, 0},
					{4760, 9155, 13088, 0},
					{2993, 5966, 8774, 0},
					{23424, 28903, 30778, 0},
					{20775, 27666, 30290, 0},
					{16474, 24410, 28299, 0},
					{12471, 20180, 24987, 0},
					{9410, 16487, 21439, 0},
					{7536, 13614, 18529, 0},
					{5048, 9586, 13549, 0},
					{21090, 27290, 29756, 0},
					{20796, 27402, 30026, 0},
					{17819, 25485, 28969, 0},
					{13860, 21909, 26462, 0},
					{11002, 18494, 23529, 0},
					{8953, 15929, 20897, 0},
					{6448, 11918, 16454, 0},
				},
			},
			{
				{
					{15999, 22208, 25449, 0},
					{13050, 19988, 24122, 0},
					{8594, 14864, 19378, 0},
					{6033, 11079, 15238, 0},
					{4554, 8683, 12347, 0},
					{3672, 7139, 10337, 0},
					{1900, 3771, 5576, 0},
					{15788, 21340, 23949, 0},
					{16825, 24235, 27758, 0},
					{12873, 20402, 24810, 0},
					{9590, 16363, 21094, 0},
					{7352, 13209, 17733, 0},
					{5960, 10989, 15184, 0},
					{3232, 6234, 9007, 0},
					{15761, 20716, 23224, 0},
					{19318, 25989, 28759, 0},
					{15529, 23094, 26929, 0},
					{11662, 18989, 23641, 0},
					{8955, 15568, 20366, 0},
					{7281, 13106, 17708, 0},
					{4248, 8059, 11440, 0},
				},
				{
					{14899, 21217, 24503, 0},
					{13519, 20283, 24047, 0},
					{9429, 15966, 20365, 0},
					{6700, 12355, 16652, 0},
					{5088, 9704, 13716, 0},
					{4243, 8154, 11731, 0},
					{2702, 5364, 7861, 0},
					{22745, 28388, 30454, 0},
					{20235, 27146, 29922, 0},
					{15896, 23715, 27637, 0},
					{11840, 19350, 24131, 0},
					{9122, 15932, 20880, 0},
					{7488, 13581, 18362, 0},
					{5114, 9568, 13370, 0},
					{20845, 26553, 28932, 0},
					{20981, 27372, 29884, 0},
					{17781, 25335, 28785, 0},
					{13760, 21708, 26297, 0},
					{10975, 18415, 23365, 0},
					{9045, 15789, 20686, 0},
					{6130, 11199, 15423, 0},
				},
			},
			{
				{
					{13549, 19724, 23158, 0},
					{11844, 18382, 22246, 0},
					{7919, 13619, 17773, 0},
					{5486, 10143, 13946, 0},
					{4166, 7983, 11324, 0},
					{3364, 6506, 9427, 0},
					{1598, 3160, 4674, 0},
					{15281, 20979, 23781, 0},
					{14939, 22119, 25952, 0},
					{11363, 18407, 22812, 0},
					{8609, 14857, 19370, 0},
					{6737, 12184, 16480, 0},
					{5506, 10263, 14262, 0},
					{2990, 5786, 8380, 0},
					{20249, 25253, 27417, 0},
					{21070, 27518, 30001, 0},
					{16854, 24469, 28074, 0},
					{12864, 20486, 25000, 0},
					{9962, 16978, 21778, 0},
					{8074, 14338, 19048, 0},
					{4494, 8479, 11906, 0},
				},
				{
					{13960, 19617, 22829, 0},
					{11150, 17341, 21228, 0},
					{7150, 12964, 17190, 0},
					{5331, 10002, 13867, 0},
					{4167, 7744, 11057, 0},
					{3480, 6629, 9646, 0},
					{1883, 3784, 5686, 0},
					{18752, 25660, 28912, 0},
					{16968, 24586, 28030, 0},
					{13520, 21055, 25313, 0},
					{10453, 17626, 22280, 0},
					{8386, 14505, 19116, 0},
					{6742, 12595, 17008, 0},
					{4273, 8140, 11499, 0},
					{22120, 27827, 30233, 0},
					{20563, 27358, 29895, 0},
					{17076, 24644, 28153, 0},
					{13362, 20942, 25309, 0},
					{10794, 17965, 22695, 0},
					{9014, 15652, 20319, 0},
					{5708, 10512, 14497, 0},
				},
			},
			{
				{
					{5705, 10930, 15725, 0},
					{7946, 12765, 16115, 0},
					{6801, 12123, 16226, 0},
					{5462, 10135, 14200, 0},
					{4189, 8011, 11507, 0},
					{3191, 6229, 9408, 0},
					{1057, 2137, 3212, 0},
					{10018, 17067, 21491, 0},
					{7380, 12582, 16453, 0},
					{6068, 10845, 14339, 0},
					{5098, 9198, 12555, 0},
					{4312, 8010, 11119, 0},
					{3700, 6966, 9781, 0},
					{1693, 3326, 4887, 0},
					{18757, 24930, 27774, 0},
					{17648, 24596, 27817, 0},
					{14707, 22052, 26026, 0},
					{11720, 18852, 23292, 0},
					{9357, 15952, 20525, 0},
					{7810, 13753, 18210, 0},
					{3879, 7333, 10328, 0},
				},
				{
					{8278, 13242, 15922, 0},
					{10547, 15867, 18919, 0},
					{9106, 15842, 20609, 0},
					{6833, 13007, 17218, 0},
					{4811, 9712, 13923, 0},
					{3985, 7352, 11128, 0},
					{1688, 3458, 5262, 0},
					{12951, 21861, 26510, 0},
					{9788, 16044, 20276, 0},
					{6309, 11244, 14870, 0},
					{5183, 9349, 12566, 0},
					{4389, 8229, 11492, 0},
					{3633, 6945, 10620, 0},
					{3600, 6847, 9907, 0},
					{21748, 28137, 30255, 0},
					{19436, 26581, 29560, 0},
					{16359, 24201, 27953, 0},
					{13961, 21693, 25871, 0},
					{11544, 18686, 23322, 0},
					{9372, 16462, 20952, 0},
					{6138, 11210, 15390, 0},
				},
			},
			{
				{
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
				},
				{
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
				},
			},
		},
	},
	{
		TxbSkip: [5][13][2]uint16{
			{
				{29614, 0},
				{9068, 0},
				{12924, 0},
				{19538, 0},
				{17737, 0},
				{24619, 0},
				{30642, 0},
				{4119, 0},
				{16026, 0},
				{25657, 0},
				{16384, 0},
				{16384, 0},
				{16384, 0},
			},
			{
				{31957, 0},
				{3230, 0},
				{11153, 0},
				{18123, 0},
				{20143, 0},
				{26536, 0},
				{31986, 0},
				{3050, 0},
				{14603, 0},
				{25155, 0},
				{16384, 0},
				{16384, 0},
				{16384, 0},
			},
			{
				{32363, 0},
				{10692, 0},
				{19090, 0},
				{24357, 0},
				{24442, 0},
				{28312, 0},
				{32169, 0},
				{3648, 0},
				{15690, 0},
				{26815, 0},
				{16384, 0},
				{16384, 0},
				{16384, 0},
			},
			{
				{30669, 0},
				{3832, 0},
				{11663, 0},
				{18889, 0},
				{19782, 0},
				{23313, 0},
				{31330, 0},
				{5124, 0},
				{18719, 0},
				{28468, 0},
				{3082, 0},
				{20982, 0},
				{29443, 0},
			},
			{
				{28573, 0},
				{3183, 0},
				{17802, 0},
				{25977, 0},
				{26677, 0},
				{27832, 0},
				{32387, 0},
				{16384, 0},
				{16384, 0},
				{16384, 0},
				{16384, 0},
				{16384, 0},
				{16384, 0},
			},
		},
		EobPt16: [2][2][5]uint16{
			{
				{4016, 4897, 8881, 14968, 0},
				{716, 1105, 2646, 10056, 0},
			},
			{
				{11139, 13270, 18241, 23566, 0},
				{3192, 5032, 10297, 19755, 0},
			},
		},
		EobPt32: [2][2][6]uint16{
			{
				{2515, 3003, 4452, 8162, 16041, 0},
				{574, 821, 1836, 5089, 13128, 0},
			},
			{
				{13468, 16303, 20361, 25105, 29281, 0},
				{3542, 5502, 10415, 16760, 25644, 0},
			},
		},
		EobPt64: [2][2][7]uint16{
			{
				{2374, 2772, 4583, 7276, 12288, 19706, 0},
				{497, 810, 1315, 3000, 7004, 15641, 0},
			},
			{
				{15050, 17126, 21410, 24886, 28156, 30726, 0},
				{4034, 6290, 10235, 14982, 21214, 28491, 0},
			},
		},
		EobPt128: [2][2][8]uint16{
			{
				{1366, 1738, 2527, 5016, 9355, 15797, 24643, 0},
				{354, 558, 944, 2760, 7287, 14037, 21779, 0},
			},
			{
				{13627, 16246, 20173, 24429, 27948, 30415, 31863, 0},
				{6275, 9889, 14769, 23164, 27988, 30493, 32272, 0},
			},
		},
		EobPt256: [2][2][9]uint16{
			{
				{3089, 3920, 6038, 9460, 14266, 19881, 25766, 29176, 0},
				{1084, 2358, 3488, 5122, 11483, 18103, 26023, 29799, 0},
			},
			{
				{11514, 13794, 17480, 20754, 24361, 27378, 29492, 31277, 0},
				{6571, 9610, 15516, 21826, 29092, 30829, 31842, 32708, 0},
			},
		},
		EobPt512: [2][10]uint16{
			{2624, 3936, 6480, 9686, 13979, 17726, 23267, 28410, 31078, 0},
			{12015, 14769, 19588, 22052, 24222, 25812, 27300, 29219, 32114, 0},
		},
		EobPt1024: [2][11]uint16{
			{2784, 3831, 7041, 10521, 14847, 18844, 23155, 26682, 29229, 31045, 0},
			{9577, 12466, 17739, 20750, 22061, 23215, 24601, 25483, 25843, 32056, 0},
		},
		EobExtra: [5][2][9][2]uint16{
			{
				{
					{18983, 0},
					{20512, 0},
					{14885, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
				},
				{
					{20090, 0},
					{19444, 0},
					{17286, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
				},
			},
			{
				{
					{19139, 0},
					{21487, 0},
					{18959, 0},
					{20910, 0},
					{19089, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
				},
				{
					{20536, 0},
					{20664, 0},
					{20625, 0},
					{19123, 0},
					{14862, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
				},
			},
			{
				{
					{19833, 0},
					{21502, 0},
					{17485, 0},
					{20267, 0},
					{18353, 0},
					{23329, 0},
					{21478, 0},
					{16384, 0},
					{16384, 0},
				},
				{
					{22041, 0},
					{23434, 0},
					{20001, 0},
					{20554, 0},
					{20951, 0},
					{20145, 0},
					{15562, 0},
					{16384, 0},
					{16384, 0},
				},
			},
			{
				{
					{23312, 0},
					{21607, 0},
					{16526, 0},
					{18957, 0},
					{18034, 0},
					{18934, 0},
					{24247, 0},
					{16921, 0},
					{17080, 0},
				},
				{
					{26579, 0},
					{24910, 0},
					{18637, 0},
					{19800, 0},
					{20388, 0},
					{9887, 0},
					{15642, 0},
					{30198, 0},
					{24721, 0},
				},
			},
			{
				{
					{26998, 0},
					{16737, 0},
					{17838, 0},
					{18922, 0},
					{19515, 0},
					{18636, 0},
					{17333, 0},
					{15776, 0},
					{22658, 0},
				},
				{
					{16384, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
				},
			},
		},
		DcSign: [2][3][2]uint16{
			{
				{16000, 0},
				{13056, 0},
				{18816, 0},
			},
			{
				{15232, 0},
				{12928, 0},
				{17280, 0},
			},
		},
		CoeffBaseEob: [5][2][4][3]uint16{
			{
				{
					{20092, 30774, 0},
					{30695, 32020, 0},
					{31131, 32103, 0},
					{28666, 30870, 0},
				},
				{
					{27258, 31095, 0},
					{31804, 32623, 0},
					{31763, 32528, 0},
					{31438, 32506, 0},
				},
			},
			{
				{
					{18049, 30489, 0},
					{31706, 32286, 0},
					{32163, 32473, 0},
					{31550, 32184, 0},
				},
				{
					{27116, 30842, 0},
					{31971, 32598, 0},
					{32088, 32576, 0},
					{32067, 32664, 0},
				},
			},
			{
				{
					{12854, 29093, 0},
					{32272, 32558, 0},
					{32667, 32729, 0},
					{32306, 32585, 0},
				},
				{
					{25476, 30366, 0},
					{32169, 32687, 0},
					{32479, 32689, 0},
					{31673, 32634, 0},
				},
			},
			{
				{
					{2809, 19301, 0},
					{32205, 32622, 0},
					{32338, 32730, 0},
					{31786, 32616, 0},
				},
				{
					{22737, 29105, 0},
					{30810, 32362, 0},
					{30014, 32627, 0},
					{30528, 32574, 0},
				},
			},
			{
				{
					{935, 3382, 0},
					{30789, 31909, 0},
					{32466, 32756, 0},
					{30860, 32513, 0},
				},
				{
					{10923, 21845, 0},
					{10923, 21845, 0},
					{10923, 21845, 0},
					{10923, 21845, 0},
				},
			},
		},
		CoeffBase: [5][2][42][4]uint16{
			{
				{
					{8896, 16227, 20630, 0},
					{23629, 31782, 32527, 0},
					{15173, 27755, 31321, 0},
					{10158, 21233, 27382, 0},
					{6420, 14857, 21558, 0},
					{3269, 8155, 12646, 0},
					{24835, 32009, 32496, 0},
					{16509, 28421, 31579, 0},
					{10957, 21514, 27418, 0},
					{7881, 15930, 22096, 0},
					{5388, 10960, 15918, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{20745, 30773, 32093, 0},
					{15200, 27221, 30861, 0},
					{13032, 20873, 25667, 0},
					{12285, 18663, 23494, 0},
					{11563, 17481, 21489, 0},
					{26260, 31982, 32320, 0},
					{15397, 28083, 31100, 0},
					{9742, 19217, 24824, 0},
					{3261, 9629, 15362, 0},
					{1480, 4322, 7499, 0},
					{27599, 32256, 32460, 0},
					{16857, 27659, 30774, 0},
					{9551, 18290, 23748, 0},
					{3052, 8933, 14103, 0},
					{2021, 5910, 9787, 0},
					{29005, 32015, 32392, 0},
					{17677, 27694, 30863, 0},
					{9204, 17356, 23219, 0},
					{2403, 7516, 12814, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
				},
				{
					{10808, 22056, 26896, 0},
					{25739, 32313, 32676, 0},
					{17288, 30203, 32221, 0},
					{11359, 24878, 29896, 0},
					{6949, 17767, 24893, 0},
					{4287, 11796, 18071, 0},
					{27880, 32521, 32705, 0},
					{19038, 31004, 32414, 0},
					{12564, 26345, 30768, 0},
					{8269, 19947, 26779, 0},
					{5674, 14657, 21674, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{25742, 32319, 32671, 0},
					{19557, 31164, 32454, 0},
					{13381, 26381, 30755, 0},
					{10101, 21466, 26722, 0},
					{9209, 19650, 26825, 0},
					{27107, 31917, 32432, 0},
					{18056, 28893, 31203, 0},
					{10200, 21434, 26764, 0},
					{4660, 12913, 19502, 0},
					{2368, 6930, 12504, 0},
					{26960, 32158, 32613, 0},
					{18628, 30005, 32031, 0},
					{10233, 22442, 28232, 0},
					{5471, 14630, 21516, 0},
					{3235, 10767, 17109, 0},
					{27696, 32440, 32692, 0},
					{20032, 31167, 32438, 0},
					{8700, 21341, 28442, 0},
					{5662, 14831, 21795, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
				},
			},
			{
				{
					{9704, 17294, 21132, 0},
					{26762, 32278, 32633, 0},
					{18382, 29620, 31819, 0},
					{10891, 23475, 28723, 0},
					{6358, 16583, 23309, 0},
					{3248, 9118, 14141, 0},
					{27204, 32573, 32699, 0},
					{19818, 30824, 32329, 0},
					{11772, 25120, 30041, 0},
					{6995, 18033, 25039, 0},
					{3752, 10442, 16098, 0},
					{27222, 32256, 32559, 0},
					{15356, 28399, 31475, 0},
					{8821, 20635, 27057, 0},
					{5511, 14404, 21239, 0},
					{2935, 8222, 13051, 0},
					{24875, 32120, 32529, 0},
					{15233, 28265, 31445, 0},
					{8605, 20570, 26932, 0},
					{5431, 14413, 21196, 0},
					{2994, 8341, 13223, 0},
					{28201, 32604, 32700, 0},
					{21041, 31446, 32456, 0},
					{13221, 26213, 30475, 0},
					{8255, 19385, 26037, 0},
					{4930, 12585, 18830, 0},
					{28768, 32448, 32627, 0},
					{19705, 30561, 32021, 0},
					{11572, 23589, 28220, 0},
					{5532, 15034, 21446, 0},
					{2460, 7150, 11456, 0},
					{29874, 32619, 32699, 0},
					{21621, 31071, 32201, 0},
					{12511, 24747, 28992, 0},
					{6281, 16395, 22748, 0},
					{3246, 9278, 14497, 0},
					{29715, 32625, 32712, 0},
					{20958, 31011, 32283, 0},
					{11233, 23671, 28806, 0},
					{6012, 16128, 22868, 0},
					{3427, 9851, 15414, 0},
					{8192, 16384, 24576, 0},
				},
				{
					{11016, 22111, 26794, 0},
					{25946, 32357, 32677, 0},
					{17890, 30452, 32252, 0},
					{11678, 25142, 29816, 0},
					{6720, 17534, 24584, 0},
					{4230, 11665, 17820, 0},
					{28400, 32623, 32747, 0},
					{21164, 31668, 32575, 0},
					{13572, 27388, 31182, 0},
					{8234, 20750, 27358, 0},
					{5065, 14055, 20897, 0},
					{28981, 32547, 32705, 0},
					{18681, 30543, 32239, 0},
					{10919, 24075, 29286, 0},
					{6431, 17199, 24077, 0},
					{3819, 10464, 16618, 0},
					{26870, 32467, 32693, 0},
					{19041, 30831, 32347, 0},
					{11794, 25211, 30016, 0},
					{6888, 18019, 24970, 0},
					{4370, 12363, 18992, 0},
					{29578, 32670, 32744, 0},
					{23159, 32007, 32613, 0},
					{15315, 28669, 31676, 0},
					{9298, 22607, 28782, 0},
					{6144, 15913, 22968, 0},
					{28110, 32499, 32669, 0},
					{21574, 30937, 32015, 0},
					{12759, 24818, 28727, 0},
					{6545, 16761, 23042, 0},
					{3649, 10597, 16833, 0},
					{28163, 32552, 32728, 0},
					{22101, 31469, 32464, 0},
					{13160, 25472, 30143, 0},
					{7303, 18684, 25468, 0},
					{5241, 13975, 20955, 0},
					{28400, 32631, 32744, 0},
					{22104, 31793, 32603, 0},
					{13557, 26571, 30846, 0},
					{7749, 19861, 26675, 0},
					{4873, 14030, 21234, 0},
					{8192, 16384, 24576, 0},
				},
			},
			{
				{
					{9800, 17635, 21073, 0},
					{26153, 31885, 32527, 0},
					{15038, 27852, 31006, 0},
					{8718, 20564, 26486, 0},
					{5128, 14076, 20514, 0},
					{2636, 7566, 11925, 0},
					{27551, 32504, 32701, 0},
					{18310, 30054, 32100, 0},
					{10211, 23420, 29082, 0},
					{6222, 16876, 23916, 0},
					{3462, 9954, 15498, 0},
					{29991, 32633, 32721, 0},
					{19883, 30751, 32201, 0},
					{11141, 24184, 29285, 0},
					{6420, 16940, 23774, 0},
					{3392, 9753, 15118, 0},
					{28465, 32616, 32712, 0},
					{19850, 30702, 32244, 0},
					{10983, 24024, 29223, 0},
					{6294, 16770, 23582, 0},
					{3244, 9283, 14509, 0},
					{30023, 32717, 32748, 0},
					{22940, 32032, 32626, 0},
					{14282, 27928, 31473, 0},
					{8562, 21327, 27914, 0},
					{4846, 13393, 19919, 0},
					{29981, 32590, 32695, 0},
					{20465, 30963, 32166, 0},
					{11479, 23579, 28195, 0},
					{5916, 15648, 22073, 0},
					{3031, 8605, 13398, 0},
					{31146, 32691, 32739, 0},
					{23106, 31724, 32444, 0},
					{13783, 26738, 30439, 0},
					{7852, 19468, 25807, 0},
					{3860, 11124, 16853, 0},
					{31014, 32724, 32748, 0},
					{23629, 32109, 32628, 0},
					{14747, 28115, 31403, 0},
					{8545, 21242, 27478, 0},
					{4574, 12781, 19067, 0},
					{8192, 16384, 24576, 0},
				},
				{
					{9185, 19694, 24688, 0},
					{26081, 31985, 32621, 0},
					{16015, 29000, 31787, 0},
					{10542, 23690, 29206, 0},
					{6732, 17945, 24677, 0},
					{3916, 11039, 16722, 0},
					{28224, 32566, 32744, 0},
					{19100, 31138, 32485, 0},
					{12528, 26620, 30879, 0},
					{7741, 20277, 26885, 0},
					{4566, 12845, 18990, 0},
					{29933, 32593, 32718, 0},
					{17670, 30333, 32155, 0},
					{10385, 23600, 28909, 0},
					{6243, 16236, 22407, 0},
					{3976, 10389, 16017, 0},
					{28377, 32561, 32738, 0},
					{19366, 31175, 32482, 0},
					{13327, 27175, 31094, 0},
					{8258, 20769, 27143, 0},
					{4703, 13198, 19527, 0},
					{31086, 32706, 32748, 0},
					{22853, 31902, 32583, 0},
					{14759, 28186, 31419, 0},
					{9284, 22382, 28348, 0},
					{5585, 15192, 21868, 0},
					{28291, 32652, 32746, 0},
					{19849, 32107, 32571, 0},
					{14834, 26818, 29214, 0},
					{10306, 22594, 28672, 0},
					{6615, 17384, 23384, 0},
					{28947, 32604, 32745, 0},
					{25625, 32289, 32646, 0},
					{18758, 28672, 31403, 0},
					{10017, 23430, 28523, 0},
					{6862, 15269, 22131, 0},
					{23933, 32509, 32739, 0},
					{19927, 31495, 32631, 0},
					{11903, 26023, 30621, 0},
					{7026, 20094, 27252, 0},
					{5998, 18106, 24437, 0},
					{8192, 16384, 24576, 0},
				},
			},
			{
				{
					{4456, 11274, 15533, 0},
					{21219, 29079, 31616, 0},
					{11173, 23774, 28567, 0},
					{7282, 18293, 24263, 0},
					{4890, 13286, 19115, 0},
					{1890, 5508, 8659, 0},
					{26651, 32136, 32647, 0},
					{14630, 28254, 31455, 0},
					{8716, 21287, 27395, 0},
					{5615, 15331, 22008, 0},
					{2675, 7700, 12150, 0},
					{29954, 32526, 32690, 0},
					{16126, 28982, 31633, 0},
					{9030, 21361, 27352, 0},
					{5411, 14793, 21271, 0},
					{2943, 8422, 13163, 0},
					{29539, 32601, 32730, 0},
					{18125, 30385, 32201, 0},
					{10422, 24090, 29468, 0},
					{6468, 17487, 24438, 0},
					{2970, 8653, 13531, 0},
					{30912, 32715, 32748, 0},
					{20666, 31373, 32497, 0},
					{12509, 26640, 30917, 0},
					{8058, 20629, 27290, 0},
					{4231, 12006, 18052, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
				},
				{
					{10202, 20633, 25484, 0},
					{27336, 31445, 32352, 0},
					{12420, 24384, 28552, 0},
					{7648, 18115, 23856, 0},
					{5662, 14341, 19902, 0},
					{3611, 10328, 15390, 0},
					{30945, 32616, 32736, 0},
					{18682, 30505, 32253, 0},
					{11513, 25336, 30203, 0},
					{7449, 19452, 26148, 0},
					{4482, 13051, 18886, 0},
					{32022, 32690, 32747, 0},
					{18578, 30501, 32146, 0},
					{11249, 23368, 28631, 0},
					{5645, 16958, 22158, 0},
					{5009, 11444, 16637, 0},
					{31357, 32710, 32748, 0},
					{21552, 31494, 32504, 0},
					{13891, 27677, 31340, 0},
					{9051, 22098, 28172, 0},
					{5190, 13377, 19486, 0},
					{32364, 32740, 32748, 0},
					{24839, 31907, 32551, 0},
					{17160, 28779, 31696, 0},
					{12452, 24137, 29602, 0},
					{6165, 15389, 22477, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
				},
			},
			{
				{
					{2575, 7281, 11077, 0},
					{14002, 20866, 25402, 0},
					{6343, 15056, 19658, 0},
					{4474, 11858, 17041, 0},
					{2865, 8299, 12534, 0},
					{1344, 3949, 6391, 0},
					{24720, 31239, 32459, 0},
					{12585, 25356, 29968, 0},
					{7181, 18246, 24444, 0},
					{5025, 13667, 19885, 0},
					{2521, 7304, 11605, 0},
					{29908, 32252, 32584, 0},
					{17421, 29156, 31575, 0},
					{9889, 22188, 27782, 0},
					{5878, 15647, 22123, 0},
					{2814, 8665, 13323, 0},
					{30183, 32568, 32713, 0},
					{18528, 30195, 32049, 0},
					{10982, 24606, 29657, 0},
					{6957, 18165, 25231, 0},
					{3508, 10118, 15468, 0},
					{31761, 32736, 32748, 0},
					{21041, 31328, 32546, 0},
					{12568, 26732, 31166, 0},
					{8052, 20720, 27733, 0},
					{4336, 12192, 18396, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
				},
				{
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
				},
			},
		},
		CoeffBr: [5][2][21][4]uint16{
			{
				{
					{16138, 22223, 25509, 0},
					{15347, 22430, 26332, 0},
					{9614, 16736, 21332, 0},
					{6600, 12275, 16907, 0},
					{4811, 9424, 13547, 0},
					{3748, 7809, 11420, 0},
					{2254, 4587, 6890, 0},
					{15196, 20284, 23177, 0},
					{18317, 25469, 28451, 0},
					{13918, 21651, 25842, 0},
					{10052, 17150, 21995, 0},
					{7499, 13630, 18587, 0},
					{6158, 11417, 16003, 0},
					{4014, 7785, 11252, 0},
					{15048, 21067, 24384, 0},
					{18202, 25346, 28553, 0},
					{14302, 22019, 26356, 0},
					{10839, 18139, 23166, 0},
					{8715, 15744, 20806, 0},
					{7536, 13576, 18544, 0},
					{5413, 10335, 14498, 0},
				},
				{
					{17394, 24501, 27895, 0},
					{15889, 23420, 27185, 0},
					{11561, 19133, 23870, 0},
					{8285, 14812, 19844, 0},
					{6496, 12043, 16550, 0},
					{4771, 9574, 13677, 0},
					{3603, 6830, 10144, 0},
					{21656, 27704, 30200, 0},
					{21324, 27915, 30511, 0},
					{17327, 25336, 28997, 0},
					{13417, 21381, 26033, 0},
					{10132, 17425, 22338, 0},
					{8580, 15016, 19633, 0},
					{5694, 11477, 16411, 0},
					{24116, 29780, 31450, 0},
					{23853, 29695, 31591, 0},
					{20085, 27614, 30428, 0},
					{15326, 24335, 28575, 0},
					{11814, 19472, 24810, 0},
					{10221, 18611, 24767, 0},
					{7689, 14558, 20321, 0},
				},
			},
			{
				{
					{16214, 22380, 25770, 0},
					{14213, 21304, 25295, 0},
					{9213, 15823, 20455, 0},
					{6395, 11758, 16139, 0},
					{4779, 9187, 13066, 0},
					{3821, 7501, 10953, 0},
					{2293, 4567, 6795, 0},
					{15859, 21283, 23820, 0},
					{18404, 25602, 28726, 0},
					{14325, 21980, 26206, 0},
					{10669, 17937, 22720, 0},
					{8297, 14642, 19447, 0},
					{6746, 12389, 16893, 0},
					{4324, 8251, 11770, 0},
					{16532, 21631, 24475, 0},
					{20667, 27150, 29668, 0},
					{16728, 24510, 28175, 0},
					{12861, 20645, 25332, 0},
					{10076, 17361, 22417, 0},
					{8395, 14940, 19963, 0},
					{5731, 10683, 14912, 0},
				},
				{
					{14433, 21155, 24938, 0},
					{14658, 21716, 25545, 0},
					{9923, 16824, 21557, 0},
					{6982, 13052, 17721, 0},
					{5419, 10503, 15050, 0},
					{4852, 9162, 13014, 0},
					{3271, 6395, 9630, 0},
					{22210, 27833, 30109, 0},
					{20750, 27368, 29821, 0},
					{16894, 24828, 28573, 0},
					{13247, 21276, 25757, 0},
					{10038, 17265, 22563, 0},
					{8587, 14947, 20327, 0},
					{5645, 11371, 15252, 0},
					{22027, 27526, 29714, 0},
					{23098, 29146, 31221, 0},
					{19886, 27341, 30272, 0},
					{15609, 23747, 28046, 0},
					{11993, 20065, 24939, 0},
					{9637, 18267, 23671, 0},
					{7625, 13801, 19144, 0},
				},
			},
			{
				{
					{14438, 20798, 24089, 0},
					{12621, 19203, 23097, 0},
					{8177, 14125, 18402, 0},
					{5674, 10501, 14456, 0},
					{4236, 8239, 11733, 0},
					{3447, 6750, 9806, 0},
					{1986, 3950, 5864, 0},
					{16208, 22099, 24930, 0},
					{16537, 24025, 27585, 0},
					{12780, 20381, 24867, 0},
					{9767, 16612, 21416, 0},
					{7686, 13738, 18398, 0},
					{6333, 11614, 15964, 0},
					{3941, 7571, 10836, 0},
					{22819, 27422, 29202, 0},
					{22224, 28514, 30721, 0},
					{17660, 25433, 28913, 0},
					{13574, 21482, 26002, 0},
					{10629, 17977, 22938, 0},
					{8612, 15298, 20265, 0},
					{5607, 10491, 14596, 0},
				},
				{
					{13569, 19800, 23206, 0},
					{13128, 19924, 23869, 0},
					{8329, 14841, 19403, 0},
					{6130, 10976, 15057, 0},
					{4682, 8839, 12518, 0},
					{3656, 7409, 10588, 0},
					{2577, 5099, 7412, 0},
					{22427, 28684, 30585, 0},
					{20913, 27750, 30139, 0},
					{15840, 24109, 27834, 0},
					{12308, 20029, 24569, 0},
					{10216, 16785, 21458, 0},
					{8309, 14203, 19113, 0},
					{6043, 11168, 15307, 0},
					{23166, 28901, 30998, 0},
					{21899, 28405, 30751, 0},
					{18413, 26091, 29443, 0},
					{15233, 23114, 27352, 0},
					{12683, 20472, 25288, 0},
					{10702, 18259, 23409, 0},
					{8125, 14464, 19226, 0},
				},
			},
			{
				{
					{9040, 14786, 18360, 0},
					{9979, 15718, 19415, 0},
					{7913, 13918, 18311, 0},
					{5859, 10889, 15184, 0},
					{4593, 8677, 12510, 0},
					{3820, 7396, 10791, 0},
					{1730, 3471, 5192, 0},
					{11803, 18365, 22709, 0},
					{11419, 18058, 22225, 0},
					{9418, 15774, 20243, 0},
					{7539, 13325, 17657, 0},
					{6233, 11317, 15384, 0},
					{5137, 9656, 13545, 0},
					{2977, 5774, 8349, 0},
					{21207, 27246, 29640, 0},
					{19547, 26578, 29497, 0},
					{16169, 23871, 27690, 0},
					{12820, 20458, 25018, 0},
					{10224, 17332, 22214, 0},
					{8526, 15048, 19884, 0},
					{5037, 9410, 13118, 0},
				},
				{
					{12339, 17329, 20140, 0},
					{13505, 19895, 23225, 0},
					{9847, 16944, 21564, 0},
					{7280, 13256, 18348, 0},
					{4712, 10009, 14454, 0},
					{4361, 7914, 12477, 0},
					{2870, 5628, 7995, 0},
					{20061, 25504, 28526, 0},
					{15235, 22878, 26145, 0},
					{12985, 19958, 24155, 0},
					{9782, 16641, 21403, 0},
					{9456, 16360, 20760, 0},
					{6855, 12940, 18557, 0},
					{5661, 10564, 15002, 0},
					{25656, 30602, 31894, 0},
					{22570, 29107, 31092, 0},
					{18917, 26423, 29541, 0},
					{15940, 23649, 27754, 0},
					{12803, 20581, 25219, 0},
					{11082, 18695, 23376, 0},
					{7939, 14373, 19005, 0},
				},
			},
			{
				{
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
				},
				{
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
				},
			},
		},
	},
	{
		TxbSkip: [5][13][2]uint16{
			{
				{26887, 0},
				{6729, 0},
				{10361, 0},
				{17442, 0},
				{15045, 0},
				{22478, 0},
				{29072, 0},
				{2713, 0},
				{11861, 0},
				{20773, 0},
				{16384, 0},
				{16384, 0},
				{16384, 0},
			},
			{
				{31903, 0},
				{2044, 0},
				{7528, 0},
				{14618, 0},
				{16182, 0},
				{24168, 0},
				{31037, 0},
				{2786, 0},
				{11194, 0},
				{20155, 0},
				{16384, 0},
				{16384, 0},
				{16384, 0},
			},
			{
				{32510, 0},
				{8430, 0},
				{17318, 0},
				{24154, 0},
				{23674, 0},
				{28789, 0},
				{32139, 0},
				{3440, 0},
				{13117, 0},
				{22702, 0},
				{16384, 0},
				{16384, 0},
				{16384, 0},
			},
			{
				{31671, 0},
				{2056, 0},
				{11746, 0},
				{16852, 0},
				{18635, 0},
				{24715, 0},
				{31484, 0},
				{4656, 0},
				{16074, 0},
				{24704, 0},
				{1806, 0},
				{14645, 0},
				{25336, 0},
			},
			{
				{31539, 0},
				{8433, 0},
				{20576, 0},
				{27904, 0},
				{27852, 0},
				{30026, 0},
				{32441, 0},
				{16384, 0},
				{16384, 0},
				{16384, 0},
				{16384, 0},
				{16384, 0},
				{16384, 0},
			},
		},
		EobPt16: [2][2][5]uint16{
			{
				{6708, 8958, 14746, 22133, 0},
				{1222, 2074, 4783, 15410, 0},
			},
			{
				{19575, 21766, 26044, 29709, 0},
				{7297, 10767, 19273, 28194, 0},
			},
		},
		EobPt32: [2][2][6]uint16{
			{
				{4617, 5709, 8446, 13584, 23135, 0},
				{1156, 1702, 3675, 9274, 20539, 0},
			},
			{
				{22086, 24282, 27010, 29770, 31743, 0},
				{7699, 10897, 20891, 26926, 31628, 0},
			},
		},
		EobPt64: [2][2][7]uint16{
			{
				{6307, 7541, 12060, 16358, 22553, 27865, 0},
				{1289, 2320, 3971, 7926, 14153, 24291, 0},
			},
			{
				{24212, 25708, 28268, 30035, 31307, 32049, 0},
				{8726, 12378, 19409, 26450, 30038, 32462, 0},
			},
		},
		EobPt128: [2][2][8]uint16{
			{
				{3472, 4885, 7489, 12481, 18517, 24536, 29635, 0},
				{886, 1731, 3271, 8469, 15569, 22126, 28383, 0},
			},
			{
				{24313, 26062, 28385, 30107, 31217, 31898, 32345, 0},
				{9165, 13282, 21150, 30286, 31894, 32571, 32712, 0},
			},
		},
		EobPt256: [2][2][9]uint16{
			{
				{5348, 7113, 11820, 15924, 22106, 26777, 30334, 31757, 0},
				{2453, 4474, 6307, 8777, 16474, 22975, 29000, 31547, 0},
			},
			{
				{23110, 24597, 27140, 28894, 30167, 30927, 31392, 32094, 0},
				{9998, 17661, 25178, 28097, 31308, 32038, 32403, 32695, 0},
			},
		},
		EobPt512: [2][10]uint16{
			{5927, 7809, 10923, 14597, 19439, 24135, 28456, 31142, 32060, 0},
			{21093, 23043, 25742, 27658, 29097, 29716, 30073, 30820, 31956, 0},
		},
		EobPt1024: [2][11]uint16{
			{6698, 8334, 11961, 15762, 20186, 23862, 27434, 29326, 31082, 32050, 0},
			{20569, 22426, 25569, 26859, 28053, 28913, 29486, 29724, 29807, 32570, 0},
		},
		EobExtra: [5][2][9][2]uint16{
			{
				{
					{20177, 0},
					{20789, 0},
					{20262, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
				},
				{
					{21416, 0},
					{20855, 0},
					{23410, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
				},
			},
			{
				{
					{20238, 0},
					{21057, 0},
					{19159, 0},
					{22337, 0},
					{20159, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
				},
				{
					{20125, 0},
					{20559, 0},
					{21707, 0},
					{22296, 0},
					{17333, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
				},
			},
			{
				{
					{19941, 0},
					{20527, 0},
					{21470, 0},
					{22487, 0},
					{19558, 0},
					{22354, 0},
					{20331, 0},
					{16384, 0},
					{16384, 0},
				},
				{
					{22752, 0},
					{25006, 0},
					{22075, 0},
					{21576, 0},
					{17740, 0},
					{21690, 0},
					{19211, 0},
					{16384, 0},
					{16384, 0},
				},
			},
			{
				{
					{21442, 0},
					{22358, 0},
					{18503, 0},
					{20291, 0},
					{19945, 0},
					{21294, 0},
					{21178, 0},
					{19400, 0},
					{10556, 0},
				},
				{
					{24648, 0},
					{24949, 0},
					{20708, 0},
					{23905, 0},
					{20501, 0},
					{9558, 0},
					{9423, 0},
					{30365, 0},
					{19253, 0},
				},
			},
			{
				{
					{26064, 0},
					{22098, 0},
					{19613, 0},
					{20525, 0},
					{17595, 0},
					{16618, 0},
					{20497, 0},
					{18989, 0},
					{15513, 0},
				},
				{
					{16384, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
					{16384, 0},
				},
			},
		},
		DcSign: [2][3][2]uint16{
			{
				{16000, 0},
				{13056, 0},
				{18816, 0},
			},
			{
				{15232, 0},
				{12928, 0},
				{17280, 0},
			},
		},
		CoeffBaseEob: [5][2][4][3]uint16{
			{
				{
					{22497, 31198, 0},
					{31715, 32495, 0},
					{31606, 32337, 0},
					{30388, 31990, 0},
				},
				{
					{27877, 31584, 0},
					{32170, 32728, 0},
					{32155, 32688, 0},
					{32219, 32702, 0},
				},
			},
			{
				{
					{21457, 31043, 0},
					{31951, 32483, 0},
					{32153, 32562, 0},
					{31473, 32215, 0},
				},
				{
					{27558, 31151, 0},
					{32020, 32640, 0},
					{32097, 32575, 0},
					{32242, 32719, 0},
				},
			},
			{
				{
					{19980, 30591, 0},
					{32219, 32597, 0},
					{32581, 32706, 0},
					{31803, 32287, 0},
				},
				{
					{26473, 30507, 0},
					{32431, 32723, 0},
					{32196, 32611, 0},
					{31588, 32528, 0},
				},
			},
			{
				{
					{24647, 30463, 0},
					{32412, 32695, 0},
					{32468, 32720, 0},
					{31269, 32523, 0},
				},
				{
					{28482, 31505, 0},
					{32152, 32701, 0},
					{31732, 32598, 0},
					{31767, 32712, 0},
				},
			},
			{
				{
					{12358, 24977, 0},
					{31331, 32385, 0},
					{32634, 32756, 0},
					{30411, 32548, 0},
				},
				{
					{10923, 21845, 0},
					{10923, 21845, 0},
					{10923, 21845, 0},
					{10923, 21845, 0},
				},
			},
		},
		CoeffBase: [5][2][42][4]uint16{
			{
				{
					{7062, 16472, 22319, 0},
					{24538, 32261, 32674, 0},
					{13675, 28041, 31779, 0},
					{8590, 20674, 27631, 0},
					{5685, 14675, 22013, 0},
					{3655, 9898, 15731, 0},
					{26493, 32418, 32658, 0},
					{16376, 29342, 32090, 0},
					{10594, 22649, 28970, 0},
					{8176, 17170, 24303, 0},
					{5605, 12694, 19139, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{23888, 31902, 32542, 0},
					{18612, 29687, 31987, 0},
					{16245, 24852, 29249, 0},
					{15765, 22608, 27559, 0},
					{19895, 24699, 27510, 0},
					{28401, 32212, 32457, 0},
					{15274, 27825, 30980, 0},
					{9364, 18128, 24332, 0},
					{2283, 8193, 15082, 0},
					{1228, 3972, 7881, 0},
					{29455, 32469, 32620, 0},
					{17981, 28245, 31388, 0},
					{10921, 20098, 26240, 0},
					{3743, 11829, 18657, 0},
					{2374, 9593, 15715, 0},
					{31068, 32466, 32635, 0},
					{20321, 29572, 31971, 0},
					{10771, 20255, 27119, 0},
					{2795, 10410, 17361, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
				},
				{
					{9320, 22102, 27840, 0},
					{27057, 32464, 32724, 0},
					{16331, 30268, 32309, 0},
					{10319, 23935, 29720, 0},
					{6189, 16448, 24106, 0},
					{3589, 10884, 18808, 0},
					{29026, 32624, 32748, 0},
					{19226, 31507, 32587, 0},
					{12692, 26921, 31203, 0},
					{7049, 19532, 27635, 0},
					{7727, 15669, 23252, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{28056, 32625, 32748, 0},
					{22383, 32075, 32669, 0},
					{15417, 27098, 31749, 0},
					{18127, 26493, 27190, 0},
					{5461, 16384, 21845, 0},
					{27982, 32091, 32584, 0},
					{19045, 29868, 31972, 0},
					{10397, 22266, 27932, 0},
					{5990, 13697, 21500, 0},
					{1792, 6912, 15104, 0},
					{28198, 32501, 32718, 0},
					{21534, 31521, 32569, 0},
					{11109, 25217, 30017, 0},
					{5671, 15124, 26151, 0},
					{4681, 14043, 18725, 0},
					{28688, 32580, 32741, 0},
					{22576, 32079, 32661, 0},
					{10627, 22141, 28340, 0},
					{9362, 14043, 28087, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
				},
			},
			{
				{
					{7754, 16948, 22142, 0},
					{25670, 32330, 32691, 0},
					{15663, 29225, 31994, 0},
					{9878, 23288, 29158, 0},
					{6419, 17088, 24336, 0},
					{3859, 11003, 17039, 0},
					{27562, 32595, 32725, 0},
					{17575, 30588, 32399, 0},
					{10819, 24838, 30309, 0},
					{7124, 18686, 25916, 0},
					{4479, 12688, 19340, 0},
					{28385, 32476, 32673, 0},
					{15306, 29005, 31938, 0},
					{8937, 21615, 28322, 0},
					{5982, 15603, 22786, 0},
					{3620, 10267, 16136, 0},
					{27280, 32464, 32667, 0},
					{15607, 29160, 32004, 0},
					{9091, 22135, 28740, 0},
					{6232, 16632, 24020, 0},
					{4047, 11377, 17672, 0},
					{29220, 32630, 32718, 0},
					{19650, 31220, 32462, 0},
					{13050, 26312, 30827, 0},
					{9228, 20870, 27468, 0},
					{6146, 15149, 21971, 0},
					{30169, 32481, 32623, 0},
					{17212, 29311, 31554, 0},
					{9911, 21311, 26882, 0},
					{4487, 13314, 20372, 0},
					{2570, 7772, 12889, 0},
					{30924, 32613, 32708, 0},
					{19490, 30206, 32107, 0},
					{11232, 23998, 29276, 0},
					{6769, 17955, 25035, 0},
					{4398, 12623, 19214, 0},
					{30609, 32627, 32722, 0},
					{19370, 30582, 32287, 0},
					{10457, 23619, 29409, 0},
					{6443, 17637, 24834, 0},
					{4645, 13236, 20106, 0},
					{8192, 16384, 24576, 0},
				},
				{
					{8626, 20271, 26216, 0},
					{26707, 32406, 32711, 0},
					{16999, 30329, 32286, 0},
					{11445, 25123, 30286, 0},
					{6411, 18828, 25601, 0},
					{6801, 12458, 20248, 0},
					{29918, 32682, 32748, 0},
					{20649, 31739, 32618, 0},
					{12879, 27773, 31581, 0},
					{7896, 21751, 28244, 0},
					{5260, 14870, 23698, 0},
					{29252, 32593, 32731, 0},
					{17072, 30460, 32294, 0},
					{10653, 24143, 29365, 0},
					{6536, 17490, 23983, 0},
					{4929, 13170, 20085, 0},
					{28137, 32518, 32715, 0},
					{18171, 30784, 32407, 0},
					{11437, 25436, 30459, 0},
					{7252, 18534, 26176, 0},
					{4126, 13353, 20978, 0},
					{31162, 32726, 32748, 0},
					{23017, 32222, 32701, 0},
					{15629, 29233, 32046, 0},
					{9387, 22621, 29480, 0},
					{6922, 17616, 25010, 0},
					{28838, 32265, 32614, 0},
					{19701, 30206, 31920, 0},
					{11214, 22410, 27933, 0},
					{5320, 14177, 23034, 0},
					{5049, 12881, 17827, 0},
					{27484, 32471, 32734, 0},
					{21076, 31526, 32561, 0},
					{12707, 26303, 31211, 0},
					{8169, 21722, 28219, 0},
					{6045, 19406, 27042, 0},
					{27753, 32572, 32745, 0},
					{20832, 31878, 32653, 0},
					{13250, 27356, 31674, 0},
					{7718, 21508, 29858, 0},
					{7209, 18350, 25559, 0},
					{8192, 16384, 24576, 0},
				},
			},
			{
				{
					{7876, 16901, 21741, 0},
					{24001, 31898, 32625, 0},
					{14529, 27959, 31451, 0},
					{8273, 20818, 27258, 0},
					{5278, 14673, 21510, 0},
					{2983, 8843, 14039, 0},
					{28016, 32574, 32732, 0},
					{17471, 30306, 32301, 0},
					{10224, 24063, 29728, 0},
					{6602, 17954, 25052, 0},
					{4002, 11585, 17759, 0},
					{30190, 32634, 32739, 0},
					{17497, 30282, 32270, 0},
					{10229, 23729, 29538, 0},
					{6344, 17211, 24440, 0},
					{3849, 11189, 17108, 0},
					{28570, 32583, 32726, 0},
					{17521, 30161, 32238, 0},
					{10153, 23565, 29378, 0},
					{6455, 17341, 24443, 0},
					{3907, 11042, 17024, 0},
					{30689, 32715, 32748, 0},
					{21546, 31840, 32610, 0},
					{13547, 27581, 31459, 0},
					{8912, 21757, 28309, 0},
					{5548, 15080, 22046, 0},
					{30783, 32540, 32685, 0},
					{17540, 29528, 31668, 0},
					{10160, 21468, 26783, 0},
					{4724, 13393, 20054, 0},
					{2702, 8174, 13102, 0},
					{31648, 32686, 32742, 0},
					{20954, 31094, 32337, 0},
					{12420, 25698, 30179, 0},
					{7304, 19320, 26248, 0},
					{4366, 12261, 18864, 0},
					{31581, 32723, 32748, 0},
					{21373, 31586, 32525, 0},
					{12744, 26625, 30885, 0},
					{7431, 20322, 26950, 0},
					{4692, 13323, 20111, 0},
					{8192, 16384, 24576, 0},
				},
				{
					{7833, 18369, 24095, 0},
					{26650, 32273, 32702, 0},
					{16371, 29961, 32191, 0},
					{11055, 24082, 29629, 0},
					{6892, 18644, 25400, 0},
					{5006, 13057, 19240, 0},
					{29834, 32666, 32748, 0},
					{19577, 31335, 32570, 0},
					{12253, 26509, 31122, 0},
					{7991, 20772, 27711, 0},
					{5677, 15910, 23059, 0},
					{30109, 32532, 32720, 0},
					{16747, 30166, 32252, 0},
					{10134, 23542, 29184, 0},
					{5791, 16176, 23556, 0},
					{4362, 10414, 17284, 0},
					{29492, 32626, 32748, 0},
					{19894, 31402, 32525, 0},
					{12942, 27071, 30869, 0},
					{8346, 21216, 27405, 0},
					{6572, 17087, 23859, 0},
					{32035, 32735, 32748, 0},
					{22957, 31838, 32618, 0},
					{14724, 28572, 31772, 0},
					{10364, 23999, 29553, 0},
					{7004, 18433, 25655, 0},
					{27528, 32277, 32681, 0},
					{16959, 31171, 32096, 0},
					{10486, 23593, 27962, 0},
					{8192, 16384, 23211, 0},
					{8937, 17873, 20852, 0},
					{27715, 32002, 32615, 0},
					{15073, 29491, 31676, 0},
					{11264, 24576, 28672, 0},
					{2341, 18725, 23406, 0},
					{7282, 18204, 25486, 0},
					{28547, 32213, 32657, 0},
					{20788, 29773, 32239, 0},
					{6780, 21469, 30508, 0},
					{5958, 14895, 23831, 0},
					{16384, 21845, 27307, 0},
					{8192, 16384, 24576, 0},
				},
			},
			{
				{
					{5992, 14304, 19765, 0},
					{22612, 31238, 32456, 0},
					{13456, 27162, 31087, 0},
					{8001, 20062, 26504, 0},
					{5168, 14105, 20764, 0},
					{2632, 7771, 12385, 0},
					{27034, 32344, 32709, 0},
					{15850, 29415, 31997, 0},
					{9494, 22776, 28841, 0},
					{6151, 16830, 23969, 0},
					{3461, 10039, 15722, 0},
					{30134, 32569, 32731, 0},
					{15638, 29422, 31945, 0},
					{9150, 21865, 28218, 0},
					{5647, 15719, 22676, 0},
					{3402, 9772, 15477, 0},
					{28530, 32586, 32735, 0},
					{17139, 30298, 32292, 0},
					{10200, 24039, 29685, 0},
					{6419, 17674, 24786, 0},
					{3544, 10225, 15824, 0},
					{31333, 32726, 32748, 0},
					{20618, 31487, 32544, 0},
					{12901, 27217, 31232, 0},
					{8624, 21734, 28171, 0},
					{5104, 14191, 20748, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
				},
				{
					{11206, 21090, 26561, 0},
					{28759, 32279, 32671, 0},
					{14171, 27952, 31569, 0},
					{9743, 22907, 29141, 0},
					{6871, 17886, 24868, 0},
					{4960, 13152, 19315, 0},
					{31077, 32661, 32748, 0},
					{19400, 31195, 32515, 0},
					{12752, 26858, 31040, 0},
					{8370, 22098, 28591, 0},
					{5457, 15373, 22298, 0},
					{31697, 32706, 32748, 0},
					{17860, 30657, 32333, 0},
					{12510, 24812, 29261, 0},
					{6180, 19124, 24722, 0},
					{5041, 13548, 17959, 0},
					{31552, 32716, 32748, 0},
					{21908, 31769, 32623, 0},
					{14470, 28201, 31565, 0},
					{9493, 22982, 28608, 0},
					{6858, 17240, 24137, 0},
					{32543, 32752, 32756, 0},
					{24286, 32097, 32666, 0},
					{15958, 29217, 32024, 0},
					{10207, 24234, 29958, 0},
					{6929, 18305, 25652, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
				},
			},
			{
				{
					{4137, 10847, 15682, 0},
					{17824, 27001, 30058, 0},
					{10204, 22796, 28291, 0},
					{6076, 15935, 22125, 0},
					{3852, 10937, 16816, 0},
					{2252, 6324, 10131, 0},
					{25840, 32016, 32662, 0},
					{15109, 28268, 31531, 0},
					{9385, 22231, 28340, 0},
					{6082, 16672, 23479, 0},
					{3318, 9427, 14681, 0},
					{30594, 32574, 32718, 0},
					{16836, 29552, 31859, 0},
					{9556, 22542, 28356, 0},
					{6305, 16725, 23540, 0},
					{3376, 9895, 15184, 0},
					{29383, 32617, 32745, 0},
					{18891, 30809, 32401, 0},
					{11688, 25942, 30687, 0},
					{7468, 19469, 26651, 0},
					{3909, 11358, 17012, 0},
					{31564, 32736, 32748, 0},
					{20906, 31611, 32600, 0},
					{13191, 27621, 31537, 0},
					{8768, 22029, 28676, 0},
					{5079, 14109, 20906, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
				},
				{
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
				},
			},
		},
		CoeffBr: [5][2][21][4]uint16{
			{
				{
					{18315, 24289, 27551, 0},
					{16854, 24068, 27835, 0},
					{10140, 17927, 23173, 0},
					{6722, 12982, 18267, 0},
					{4661, 9826, 14706, 0},
					{3832, 8165, 12294, 0},
					{2795, 6098, 9245, 0},
					{17145, 23326, 26672, 0},
					{20733, 27680, 30308, 0},
					{16032, 24461, 28546, 0},
					{11653, 20093, 25081, 0},
					{9290, 16429, 22086, 0},
					{7796, 14598, 19982, 0},
					{6502, 12378, 17441, 0},
					{21681, 27732, 30320, 0},
					{22389, 29044, 31261, 0},
					{19027, 26731, 30087, 0},
					{14739, 23755, 28624, 0},
					{11358, 20778, 25511, 0},
					{10995, 18073, 24190, 0},
					{9162, 14990, 20617, 0},
				},
				{
					{21425, 27952, 30388, 0},
					{18062, 25838, 29034, 0},
					{11956, 19881, 24808, 0},
					{7718, 15000, 20980, 0},
					{5702, 11254, 16143, 0},
					{4898, 9088, 16864, 0},
					{3679, 6776, 11907, 0},
					{23294, 30160, 31663, 0},
					{24397, 29896, 31836, 0},
					{19245, 27128, 30593, 0},
					{13202, 19825, 26404, 0},
					{11578, 19297, 23957, 0},
					{8073, 13297, 21370, 0},
					{5461, 10923, 19745, 0},
					{27367, 30521, 31934, 0},
					{24904, 30671, 31940, 0},
					{23075, 28460, 31299, 0},
					{14400, 23658, 30417, 0},
					{13885, 23882, 28325, 0},
					{14746, 22938, 27853, 0},
					{5461, 16384, 27307, 0},
				},
			},
			{
				{
					{18274, 24813, 27890, 0},
					{15537, 23149, 27003, 0},
					{9449, 16740, 21827, 0},
					{6700, 12498, 17261, 0},
					{4988, 9866, 14198, 0},
					{4236, 8147, 11902, 0},
					{2867, 5860, 8654, 0},
					{17124, 23171, 26101, 0},
					{20396, 27477, 30148, 0},
					{16573, 24629, 28492, 0},
					{12749, 20846, 25674, 0},
					{10233, 17878, 22818, 0},
					{8525, 15332, 20363, 0},
					{6283, 11632, 16255, 0},
					{20466, 26511, 29286, 0},
					{23059, 29174, 31191, 0},
					{19481, 27263, 30241, 0},
					{15458, 23631, 28137, 0},
					{12416, 20608, 25693, 0},
					{10261, 18011, 23261, 0},
					{8016, 14655, 19666, 0},
				},
				{
					{17616, 24586, 28112, 0},
					{15809, 23299, 27155, 0},
					{10767, 18890, 23793, 0},
					{7727, 14255, 18865, 0},
					{6129, 11926, 16882, 0},
					{4482, 9704, 14861, 0},
					{3277, 7452, 11522, 0},
					{22956, 28551, 30730, 0},
					{22724, 28937, 30961, 0},
					{18467, 26324, 29580, 0},
					{13234, 20713, 25649, 0},
					{11181, 17592, 22481, 0},
					{8291, 18358, 24576, 0},
					{7568, 11881, 14984, 0},
					{24948, 29001, 31147, 0},
					{25674, 30619, 32151, 0},
					{20841, 26793, 29603, 0},
					{14669, 24356, 28666, 0},
					{11334, 23593, 28219, 0},
					{8922, 14762, 22873, 0},
					{8301, 13544, 20535, 0},
				},
			},
			{
				{
					{17113, 23733, 27081, 0},
					{14139, 21406, 25452, 0},
					{8552, 15002, 19776, 0},
					{5871, 11120, 15378, 0},
					{4455, 8616, 12253, 0},
					{3469, 6910, 10386, 0},
					{2255, 4553, 6782, 0},
					{18224, 24376, 27053, 0},
					{19290, 26710, 29614, 0},
					{14936, 22991, 27184, 0},
					{11238, 18951, 23762, 0},
					{8786, 15617, 20588, 0},
					{7317, 13228, 18003, 0},
					{5101, 9512, 13493, 0},
					{22639, 28222, 30210, 0},
					{23216, 29331, 31307, 0},
					{19075, 26762, 29895, 0},
					{15014, 23113, 27457, 0},
					{11938, 19857, 24752, 0},
					{9942, 17280, 22282, 0},
					{7167, 13144, 17752, 0},
				},
				{
					{15820, 22738, 26488, 0},
					{13530, 20885, 25216, 0},
					{8395, 15530, 20452, 0},
					{6574, 12321, 16380, 0},
					{5353, 10419, 14568, 0},
					{4613, 8446, 12381, 0},
					{3440, 7158, 9903, 0},
					{24247, 29051, 31224, 0},
					{22118, 28058, 30369, 0},
					{16498, 24768, 28389, 0},
					{12920, 21175, 26137, 0},
					{10730, 18619, 25352, 0},
					{10187, 16279, 22791, 0},
					{9310, 14631, 22127, 0},
					{24970, 30558, 32057, 0},
					{24801, 29942, 31698, 0},
					{22432, 28453, 30855, 0},
					{19054, 25680, 29580, 0},
					{14392, 23036, 28109, 0},
					{12495, 20947, 26650, 0},
					{12442, 20326, 26214, 0},
				},
			},
			{
				{
					{12162, 18785, 22648, 0},
					{12749, 19697, 23806, 0},
					{8580, 15297, 20346, 0},
					{6169, 11749, 16543, 0},
					{4836, 9391, 13448, 0},
					{3821, 7711, 11613, 0},
					{2228, 4601, 7070, 0},
					{16319, 24725, 28280, 0},
					{15698, 23277, 27168, 0},
					{12726, 20368, 25047, 0},
					{9912, 17015, 21976, 0},
					{7888, 14220, 19179, 0},
					{6777, 12284, 17018, 0},
					{4492, 8590, 12252, 0},
					{23249, 28904, 30947, 0},
					{21050, 27908, 30512, 0},
					{17440, 25340, 28949, 0},
					{14059, 22018, 26541, 0},
					{11288, 18903, 23898, 0},
					{9411, 16342, 21428, 0},
					{6278, 11588, 15944, 0},
				},
				{
					{13981, 20067, 23226, 0},
					{16922, 23580, 26783, 0},
					{11005, 19039, 24487, 0},
					{7389, 14218, 19798, 0},
					{5598, 11505, 17206, 0},
					{6090, 11213, 15659, 0},
					{3820, 7371, 10119, 0},
					{21082, 26925, 29675, 0},
					{21262, 28627, 31128, 0},
					{18392, 26454, 30437, 0},
					{14870, 22910, 27096, 0},
					{12620, 19484, 24908, 0},
					{9290, 16553, 22802, 0},
					{6668, 14288, 20004, 0},
					{27704, 31055, 31949, 0},
					{24709, 29978, 31788, 0},
					{21668, 29264, 31657, 0},
					{18295, 26968, 30074, 0},
					{16399, 24422, 29313, 0},
					{14347, 23026, 28104, 0},
					{12370, 19806, 24477, 0},
				},
			},
			{
				{
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
				},
				{
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
					{8192, 16384, 24576, 0},
				},
			},
		},
	},
}
