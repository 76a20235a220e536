package schemescatalog

import "oss.terrastruct.com/colorschemes/schemes"

// Office holds the Microsoft Office theme color sets, in declaration order.
var Office = []schemes.Definition{
	{
		ID:       "Adjacency6",
		Category: schemes.Office,
		Colors: []string{
			"#a9a57c", "#9cbebd", "#d2cb6c", "#95a39d", "#c89f5d", "#b1a089",
		},
	},
	{
		ID:       "Advantage6",
		Category: schemes.Office,
		Colors: []string{
			"#663366", "#330f42", "#666699", "#999966", "#f7901e", "#a3a101",
		},
	},
	{
		ID:       "Angles6",
		Category: schemes.Office,
		Colors: []string{
			"#797b7e", "#f96a1b", "#08a1d9", "#7c984a", "#c2ad8d", "#506e94",
		},
	},
	{
		ID:       "Apex6",
		Category: schemes.Office,
		Colors: []string{
			"#ceb966", "#9cb084", "#6bb1c9", "#6585cf", "#7e6bc9", "#a379bb",
		},
	},
	{
		ID:       "Apothecary6",
		Category: schemes.Office,
		Colors: []string{
			"#93a299", "#cf543f", "#b5ae53", "#848058", "#e8b54d", "#786c71",
		},
	},
	{
		ID:       "Aspect6",
		Category: schemes.Office,
		Colors: []string{
			"#f07f09", "#9f2936", "#1b587c", "#4e8542", "#604878", "#c19859",
		},
	},
	{
		ID:       "Atlas6",
		Category: schemes.Office,
		Colors: []string{
			"#f81b02", "#fc7715", "#afbf41", "#50c49f", "#3b95c4", "#b560d4",
		},
	},
	{
		ID:       "Austin6",
		Category: schemes.Office,
		Colors: []string{
			"#94c600", "#71685a", "#ff6700", "#909465", "#956b43", "#fea022",
		},
	},
	{
		ID:       "Badge6",
		Category: schemes.Office,
		Colors: []string{
			"#f8b323", "#656a59", "#46b2b5", "#8caa7e", "#d36f68", "#826276",
		},
	},
	{
		ID:       "Banded6",
		Category: schemes.Office,
		Colors: []string{
			"#ffc000", "#a5d028", "#08cc78", "#f24099", "#828288", "#f56617",
		},
	},
	{
		ID:       "Basis6",
		Category: schemes.Office,
		Colors: []string{
			"#f09415", "#c1b56b", "#4baf73", "#5aa6c0", "#d17df9", "#fa7e5c",
		},
	},
	{
		ID:       "Berlin6",
		Category: schemes.Office,
		Colors: []string{
			"#a6b727", "#df5327", "#fe9e00", "#418ab3", "#d7d447", "#818183",
		},
	},
	{
		ID:       "BlackTie6",
		Category: schemes.Office,
		Colors: []string{
			"#6f6f74", "#a7b789", "#beae98", "#92a9b9", "#9c8265", "#8d6974",
		},
	},
	{
		ID:       "Blue6",
		Category: schemes.Office,
		Colors: []string{
			"#0f6fc6", "#009dd9", "#0bd0d9", "#10cf9b", "#7cca62", "#a5c249",
		},
	},
	{
		ID:       "BlueGreen6",
		Category: schemes.Office,
		Colors: []string{
			"#3494ba", "#58b6c0", "#75bda7", "#7a8c8e", "#84acb6", "#2683c6",
		},
	},
	{
		ID:       "BlueII6",
		Category: schemes.Office,
		Colors: []string{
			"#1cade4", "#2683c6", "#27ced7", "#42ba97", "#3e8853", "#62a39f",
		},
	},
	{
		ID:       "BlueRed6",
		Category: schemes.Office,
		Colors: []string{
			"#4a66ac", "#629dd1", "#297fd5", "#7f8fa9", "#5aa2ae", "#9d90a0",
		},
	},
	{
		ID:       "BlueWarm6",
		Category: schemes.Office,
		Colors: []string{
			"#4a66ac", "#629dd1", "#297fd5", "#7f8fa9", "#5aa2ae", "#9d90a0",
		},
	},
	{
		ID:       "Breeze6",
		Category: schemes.Office,
		Colors: []string{
			"#2c7c9f", "#244a58", "#e2751d", "#ffb400", "#7eb606", "#c00000",
		},
	},
	{
		ID:       "Capital6",
		Category: schemes.Office,
		Colors: []string{
			"#4b5a60", "#9c5238", "#504539", "#c1ad79", "#667559", "#bad6ad",
		},
	},
	{
		ID:       "Celestial6",
		Category: schemes.Office,
		Colors: []string{
			"#ac3ec1", "#477bd1", "#46b298", "#90ba4c", "#dd9d31", "#e25247",
		},
	},
	{
		ID:       "Circuit6",
		Category: schemes.Office,
		Colors: []string{
			"#9acd4c", "#faa93a", "#d35940", "#b258d3", "#63a0cc", "#8ac4a7",
		},
	},
	{
		ID:       "Civic6",
		Category: schemes.Office,
		Colors: []string{
			"#d16349", "#ccb400", "#8cadae", "#8c7b70", "#8fb08c", "#d19049",
		},
	},
	{
		ID:       "Clarity6",
		Category: schemes.Office,
		Colors: []string{
			"#93a299", "#ad8f67", "#726056", "#4c5a6a", "#808da0", "#79463d",
		},
	},
	{
		ID:       "Codex6",
		Category: schemes.Office,
		Colors: []string{
			"#990000", "#efab16", "#78ac35", "#35aca2", "#4083cf", "#0d335e",
		},
	},
	{
		ID:       "Composite6",
		Category: schemes.Office,
		Colors: []string{
			"#98c723", "#59b0b9", "#deae00", "#b77bb4", "#e0773c", "#a98d63",
		},
	},
	{
		ID:       "Concourse6",
		Category: schemes.Office,
		Colors: []string{
			"#2da2bf", "#da1f28", "#eb641b", "#39639d", "#474b78", "#7d3c4a",
		},
	},
	{
		ID:       "Couture6",
		Category: schemes.Office,
		Colors: []string{
			"#9e8e5c", "#a09781", "#85776d", "#aeafa9", "#8d878b", "#6b6149",
		},
	},
	{
		ID:       "Crop6",
		Category: schemes.Office,
		Colors: []string{
			"#8c8d86", "#e6c069", "#897b61", "#8dab8e", "#77a2bb", "#e28394",
		},
	},
	{
		ID:       "Damask6",
		Category: schemes.Office,
		Colors: []string{
			"#9ec544", "#50bea3", "#4a9ccc", "#9a66ca", "#c54f71", "#de9c3c",
		},
	},
	{
		ID:       "Depth6",
		Category: schemes.Office,
		Colors: []string{
			"#41aebd", "#97e9d5", "#a2cf49", "#608f3d", "#f4de3a", "#fcb11c",
		},
	},
	{
		ID:       "Dividend6",
		Category: schemes.Office,
		Colors: []string{
			"#4d1434", "#903163", "#b2324b", "#969fa7", "#66b1ce", "#40619d",
		},
	},
	{
		ID:       "Droplet6",
		Category: schemes.Office,
		Colors: []string{
			"#2fa3ee", "#4bcaad", "#86c157", "#d99c3f", "#ce6633", "#a35dd1",
		},
	},
	{
		ID:       "Elemental6",
		Category: schemes.Office,
		Colors: []string{
			"#629dd1", "#297fd5", "#7f8fa9", "#4a66ac", "#5aa2ae", "#9d90a0",
		},
	},
	{
		ID:       "Equity6",
		Category: schemes.Office,
		Colors: []string{
			"#d34817", "#9b2d1f", "#a28e6a", "#956251", "#918485", "#855d5d",
		},
	},
	{
		ID:       "Essential6",
		Category: schemes.Office,
		Colors: []string{
			"#7a7a7a", "#f5c201", "#526db0", "#989aac", "#dc5924", "#b4b392",
		},
	},
	{
		ID:       "Excel16",
		Category: schemes.Office,
		Colors: []string{
			"#9999ff", "#993366", "#ffffcc", "#ccffff", "#660066", "#ff8080",
			"#0066cc", "#ccccff", "#000080", "#ff00ff", "#ffff00", "#0000ff",
			"#800080", "#800000", "#008080", "#0000ff",
		},
	},
	{
		ID:       "Executive6",
		Category: schemes.Office,
		Colors: []string{
			"#6076b4", "#9c5252", "#e68422", "#846648", "#63891f", "#758085",
		},
	},
	{
		ID:       "Exhibit6",
		Category: schemes.Office,
		Colors: []string{
			"#3399ff", "#69ffff", "#ccff33", "#3333ff", "#9933ff", "#ff33ff",
		},
	},
	{
		ID:       "Expo6",
		Category: schemes.Office,
		Colors: []string{
			"#fbc01e", "#efe1a2", "#fa8716", "#be0204", "#640f10", "#7e13e3",
		},
	},
	{
		ID:       "Facet6",
		Category: schemes.Office,
		Colors: []string{
			"#90c226", "#54a021", "#e6b91e", "#e76618", "#c42f1a", "#918655",
		},
	},
	{
		ID:       "Feathered6",
		Category: schemes.Office,
		Colors: []string{
			"#606372", "#79a8a4", "#b2ad8f", "#ad8082", "#dec18c", "#92a185",
		},
	},
	{
		ID:       "Flow6",
		Category: schemes.Office,
		Colors: []string{
			"#0f6fc6", "#009dd9", "#0bd0d9", "#10cf9b", "#7cca62", "#a5c249",
		},
	},
	{
		ID:       "Focus6",
		Category: schemes.Office,
		Colors: []string{
			"#ffb91d", "#f97817", "#6de304", "#ff0000", "#732bea", "#c913ad",
		},
	},
	{
		ID:       "Folio6",
		Category: schemes.Office,
		Colors: []string{
			"#294171", "#748cbc", "#8e887c", "#834736", "#5a1705", "#a0a16a",
		},
	},
	{
		ID:       "Formal6",
		Category: schemes.Office,
		Colors: []string{
			"#907f76", "#a46645", "#cd9c47", "#9a92cd", "#7d639b", "#733678",
		},
	},
	{
		ID:       "Forte6",
		Category: schemes.Office,
		Colors: []string{
			"#c70f0c", "#dd6b0d", "#faa700", "#93e50d", "#17c7ba", "#0a96e4",
		},
	},
	{
		ID:       "Foundry6",
		Category: schemes.Office,
		Colors: []string{
			"#72a376", "#b0ccb0", "#a8cdd7", "#c0beaf", "#cec597", "#e8b7b7",
		},
	},
	{
		ID:       "Frame6",
		Category: schemes.Office,
		Colors: []string{
			"#40bad2", "#fab900", "#90bb23", "#ee7008", "#1ab39f", "#d5393d",
		},
	},
	{
		ID:       "Gallery6",
		Category: schemes.Office,
		Colors: []string{
			"#b71e42", "#de478e", "#bc72f0", "#795faf", "#586ea6", "#6892a0",
		},
	},
	{
		ID:       "Genesis6",
		Category: schemes.Office,
		Colors: []string{
			"#80b606", "#e29f1d", "#2397e2", "#35aca2", "#5430bb", "#8d34e0",
		},
	},
	{
		ID:       "Grayscale6",
		Category: schemes.Office,
		Colors: []string{
			"#dddddd", "#b2b2b2", "#969696", "#808080", "#5f5f5f", "#4d4d4d",
		},
	},
	{
		ID:       "Green6",
		Category: schemes.Office,
		Colors: []string{
			"#549e39", "#8ab833", "#c0cf3a", "#029676", "#4ab5c4", "#0989b1",
		},
	},
	{
		ID:       "GreenYellow6",
		Category: schemes.Office,
		Colors: []string{
			"#99cb38", "#63a537", "#37a76f", "#44c1a3", "#4eb3cf", "#51c3f9",
		},
	},
	{
		ID:       "Grid6",
		Category: schemes.Office,
		Colors: []string{
			"#c66951", "#bf974d", "#928b70", "#87706b", "#94734e", "#6f777d",
		},
	},
	{
		ID:       "Habitat6",
		Category: schemes.Office,
		Colors: []string{
			"#f8c000", "#f88600", "#f83500", "#8b723d", "#818b3d", "#586215",
		},
	},
	{
		ID:       "Hardcover6",
		Category: schemes.Office,
		Colors: []string{
			"#873624", "#d6862d", "#d0be40", "#877f6c", "#972109", "#aeb795",
		},
	},
	{
		ID:       "Headlines6",
		Category: schemes.Office,
		Colors: []string{
			"#439eb7", "#e28b55", "#dcb64d", "#4ca198", "#835b82", "#645135",
		},
	},
	{
		ID:       "Horizon6",
		Category: schemes.Office,
		Colors: []string{
			"#7e97ad", "#cc8e60", "#7a6a60", "#b4936d", "#67787b", "#9d936f",
		},
	},
	{
		ID:       "Infusion6",
		Category: schemes.Office,
		Colors: []string{
			"#8c73d0", "#c2e8c4", "#c5a6e8", "#b45ec7", "#9fdafb", "#95c5b0",
		},
	},
	{
		ID:       "Inkwell6",
		Category: schemes.Office,
		Colors: []string{
			"#860908", "#4a0505", "#7a500a", "#c47810", "#827752", "#b5bb83",
		},
	},
	{
		ID:       "Inspiration6",
		Category: schemes.Office,
		Colors: []string{
			"#749805", "#bacc82", "#6e9ec2", "#2046a5", "#5039c6", "#7411d0",
		},
	},
	{
		ID:       "Integral6",
		Category: schemes.Office,
		Colors: []string{
			"#1cade4", "#2683c6", "#27ced7", "#42ba97", "#3e8853", "#62a39f",
		},
	},
	{
		ID:       "Ion6",
		Category: schemes.Office,
		Colors: []string{
			"#b01513", "#ea6312", "#e6b729", "#6aac90", "#5f9c9d", "#9e5e9b",
		},
	},
	{
		ID:       "IonBoardroom6",
		Category: schemes.Office,
		Colors: []string{
			"#b31166", "#e33d6f", "#e45f3c", "#e9943a", "#9b6bf2", "#d53dd0",
		},
	},
	{
		ID:       "Kilter6",
		Category: schemes.Office,
		Colors: []string{
			"#76c5ef", "#fea022", "#ff6700", "#70a525", "#a5d848", "#20768c",
		},
	},
	{
		ID:       "Madison6",
		Category: schemes.Office,
		Colors: []string{
			"#a1d68b", "#5ec795", "#4dadcf", "#cdb756", "#e29c36", "#8ec0c1",
		},
	},
	{
		ID:       "MainEvent6",
		Category: schemes.Office,
		Colors: []string{
			"#b80e0f", "#a6987d", "#7f9a71", "#64969f", "#9b75b2", "#80737a",
		},
	},
	{
		ID:       "Marquee6",
		Category: schemes.Office,
		Colors: []string{
			"#418ab3", "#a6b727", "#f69200", "#838383", "#fec306", "#df5327",
		},
	},
	{
		ID:       "Median6",
		Category: schemes.Office,
		Colors: []string{
			"#94b6d2", "#dd8047", "#a5ab81", "#d8b25c", "#7ba79d", "#968c8c",
		},
	},
	{
		ID:       "Mesh6",
		Category: schemes.Office,
		Colors: []string{
			"#6bb76d", "#e88651", "#c64847", "#f0ad00", "#60b5cc", "#e66c7d",
		},
	},
	{
		ID:       "Metro6",
		Category: schemes.Office,
		Colors: []string{
			"#7fd13b", "#ea157a", "#feb80a", "#00addc", "#738ac8", "#1ab39f",
		},
	},
	{
		ID:       "Metropolitan6",
		Category: schemes.Office,
		Colors: []string{
			"#50b4c8", "#a8b97f", "#9b9256", "#657689", "#7a855d", "#84ac9d",
		},
	},
	{
		ID:       "Module6",
		Category: schemes.Office,
		Colors: []string{
			"#f0ad00", "#60b5cc", "#e66c7d", "#6bb76d", "#e88651", "#c64847",
		},
	},
	{
		ID:       "NewsPrint6",
		Category: schemes.Office,
		Colors: []string{
			"#ad0101", "#726056", "#ac956e", "#808da9", "#424e5b", "#730e00",
		},
	},
	{
		ID:       "Office6",
		Category: schemes.Office,
		Colors: []string{
			"#5b9bd5", "#ed7d31", "#a5a5a5", "#ffc000", "#4472c4", "#70ad47",
		},
	},
	{
		ID:       "OfficeClassic6",
		Category: schemes.Office,
		Colors: []string{
			"#4f81bd", "#c0504d", "#9bbb59", "#8064a2", "#4bacc6", "#f79646",
		},
	},
	{
		ID:       "Opulent6",
		Category: schemes.Office,
		Colors: []string{
			"#b83d68", "#ac66bb", "#de6c36", "#f9b639", "#cf6da4", "#fa8d3d",
		},
	},
	{
		ID:       "Orange6",
		Category: schemes.Office,
		Colors: []string{
			"#e48312", "#bd582c", "#865640", "#9b8357", "#c2bc80", "#94a088",
		},
	},
	{
		ID:       "OrangeRed6",
		Category: schemes.Office,
		Colors: []string{
			"#d34817", "#9b2d1f", "#a28e6a", "#956251", "#918485", "#855d5d",
		},
	},
	{
		ID:       "Orbit6",
		Category: schemes.Office,
		Colors: []string{
			"#f2a40e", "#d6271f", "#a70ce8", "#901574", "#dfa481", "#c9a201",
		},
	},
	{
		ID:       "Organic6",
		Category: schemes.Office,
		Colors: []string{
			"#83992a", "#3c9770", "#44709d", "#a23c33", "#d97828", "#deb340",
		},
	},
	{
		ID:       "Oriel6",
		Category: schemes.Office,
		Colors: []string{
			"#fe8637", "#7598d9", "#b32c16", "#f5cd2d", "#aebad5", "#777c84",
		},
	},
	{
		ID:       "Origin6",
		Category: schemes.Office,
		Colors: []string{
			"#727ca3", "#9fb8cd", "#d2da7a", "#fada7a", "#b88472", "#8e736a",
		},
	},
	{
		ID:       "Paper6",
		Category: schemes.Office,
		Colors: []string{
			"#a5b592", "#f3a447", "#e7bc29", "#d092a7", "#9c85c0", "#809ec2",
		},
	},
	{
		ID:       "Parallax6",
		Category: schemes.Office,
		Colors: []string{
			"#30acec", "#80c34f", "#e29d3e", "#d64a3b", "#d64787", "#a666e1",
		},
	},
	{
		ID:       "Parcel6",
		Category: schemes.Office,
		Colors: []string{
			"#f6a21d", "#9bafb5", "#c96731", "#9ca383", "#87795d", "#a0988c",
		},
	},
	{
		ID:       "Perception6",
		Category: schemes.Office,
		Colors: []string{
			"#a2c816", "#e07602", "#e4c402", "#7dc1ef", "#21449b", "#a2b170",
		},
	},
	{
		ID:       "Perspective6",
		Category: schemes.Office,
		Colors: []string{
			"#838d9b", "#d2610c", "#80716a", "#94147c", "#5d5ad2", "#6f6c7d",
		},
	},
	{
		ID:       "Pixel6",
		Category: schemes.Office,
		Colors: []string{
			"#ff7f01", "#f1b015", "#fbec85", "#d2c2f1", "#da5af4", "#9d09d1",
		},
	},
	{
		ID:       "Plaza6",
		Category: schemes.Office,
		Colors: []string{
			"#990000", "#580101", "#e94a00", "#eb8f00", "#a4a4a4", "#666666",
		},
	},
	{
		ID:       "Precedent6",
		Category: schemes.Office,
		Colors: []string{
			"#993232", "#9b6c34", "#736c5d", "#c9972b", "#c95f2b", "#8f7a05",
		},
	},
	{
		ID:       "Pushpin6",
		Category: schemes.Office,
		Colors: []string{
			"#fda023", "#aa2b1e", "#71685c", "#64a73b", "#eb5605", "#b9ca1a",
		},
	},
	{
		ID:       "Quotable6",
		Category: schemes.Office,
		Colors: []string{
			"#00c6bb", "#6feba0", "#b6df5e", "#efb251", "#ef755f", "#ed515c",
		},
	},
	{
		ID:       "Red6",
		Category: schemes.Office,
		Colors: []string{
			"#a5300f", "#d55816", "#e19825", "#b19c7d", "#7f5f52", "#b27d49",
		},
	},
	{
		ID:       "RedOrange6",
		Category: schemes.Office,
		Colors: []string{
			"#e84c22", "#ffbd47", "#b64926", "#ff8427", "#cc9900", "#b22600",
		},
	},
	{
		ID:       "RedViolet6",
		Category: schemes.Office,
		Colors: []string{
			"#e32d91", "#c830cc", "#4ea6dc", "#4775e7", "#8971e1", "#d54773",
		},
	},
	{
		ID:       "Retrospect6",
		Category: schemes.Office,
		Colors: []string{
			"#e48312", "#bd582c", "#865640", "#9b8357", "#c2bc80", "#94a088",
		},
	},
	{
		ID:       "Revolution6",
		Category: schemes.Office,
		Colors: []string{
			"#0c5986", "#ddf53d", "#508709", "#bf5e00", "#9c0001", "#660075",
		},
	},
	{
		ID:       "Saddle6",
		Category: schemes.Office,
		Colors: []string{
			"#c6b178", "#9c5b14", "#71b2bc", "#78aa5d", "#867099", "#4c6f75",
		},
	},
	{
		ID:       "Savon6",
		Category: schemes.Office,
		Colors: []string{
			"#1cade4", "#2683c6", "#27ced7", "#42ba97", "#3e8853", "#62a39f",
		},
	},
	{
		ID:       "Sketchbook6",
		Category: schemes.Office,
		Colors: []string{
			"#a63212", "#e68230", "#9bb05e", "#6b9bc7", "#4e66b2", "#8976ac",
		},
	},
	{
		ID:       "Sky6",
		Category: schemes.Office,
		Colors: []string{
			"#073779", "#8fd9fb", "#ffcc00", "#eb6615", "#c76402", "#b523b4",
		},
	},
	{
		ID:       "Slate6",
		Category: schemes.Office,
		Colors: []string{
			"#bc451b", "#d3ba68", "#bb8640", "#ad9277", "#a55a43", "#ad9d7b",
		},
	},
	{
		ID:       "Slice6",
		Category: schemes.Office,
		Colors: []string{
			"#052f61", "#a50e82", "#14967c", "#6a9e1f", "#e87d37", "#c62324",
		},
	},
	{
		ID:       "Slipstream6",
		Category: schemes.Office,
		Colors: []string{
			"#4e67c8", "#5eccf3", "#a7ea52", "#5dceaf", "#ff8021", "#f14124",
		},
	},
	{
		ID:       "SOHO6",
		Category: schemes.Office,
		Colors: []string{
			"#61625e", "#964d2c", "#66553e", "#848058", "#afa14b", "#ad7d4d",
		},
	},
	{
		ID:       "Solstice6",
		Category: schemes.Office,
		Colors: []string{
			"#3891a7", "#feb80a", "#c32d2e", "#84aa33", "#964305", "#475a8d",
		},
	},
	{
		ID:       "Spectrum6",
		Category: schemes.Office,
		Colors: []string{
			"#990000", "#ff6600", "#ffba00", "#99cc00", "#528a02", "#333333",
		},
	},
	{
		ID:       "Story6",
		Category: schemes.Office,
		Colors: []string{
			"#1d86cd", "#732e9a", "#b50b1b", "#e8950e", "#55992b", "#2c9c89",
		},
	},
	{
		ID:       "Studio6",
		Category: schemes.Office,
		Colors: []string{
			"#f7901e", "#fec60b", "#9fe62f", "#4ea5d1", "#1c4596", "#542d90",
		},
	},
	{
		ID:       "Summer6",
		Category: schemes.Office,
		Colors: []string{
			"#51a6c2", "#51c2a9", "#7ec251", "#e1dc53", "#b54721", "#a16bb1",
		},
	},
	{
		ID:       "Technic6",
		Category: schemes.Office,
		Colors: []string{
			"#6ea0b0", "#ccaf0a", "#8d89a4", "#748560", "#9e9273", "#7e848d",
		},
	},
	{
		ID:       "Thatch6",
		Category: schemes.Office,
		Colors: []string{
			"#759aa5", "#cfc60d", "#99987f", "#90ac97", "#ffad1c", "#b9ab6f",
		},
	},
	{
		ID:       "Tradition6",
		Category: schemes.Office,
		Colors: []string{
			"#6b4a0b", "#790a14", "#908342", "#423e5c", "#641345", "#748a2f",
		},
	},
	{
		ID:       "Travelogue6",
		Category: schemes.Office,
		Colors: []string{
			"#b74d21", "#a32323", "#4576a3", "#615d9a", "#67924b", "#bf7b1b",
		},
	},
	{
		ID:       "Trek6",
		Category: schemes.Office,
		Colors: []string{
			"#f0a22e", "#a5644e", "#b58b80", "#c3986d", "#a19574", "#c17529",
		},
	},
	{
		ID:       "Twilight6",
		Category: schemes.Office,
		Colors: []string{
			"#e8bc4a", "#83c1c6", "#e78d35", "#909ce1", "#839c41", "#cc5439",
		},
	},
	{
		ID:       "Urban6",
		Category: schemes.Office,
		Colors: []string{
			"#53548a", "#438086", "#a04da3", "#c4652d", "#8b5d3d", "#5c92b5",
		},
	},
	{
		ID:       "UrbanPop6",
		Category: schemes.Office,
		Colors: []string{
			"#86ce24", "#00a2e6", "#fac810", "#7d8f8c", "#d06b20", "#958b8b",
		},
	},
	{
		ID:       "VaporTrail6",
		Category: schemes.Office,
		Colors: []string{
			"#df2e28", "#fe801a", "#e9bf35", "#81bb42", "#32c7a9", "#4a9bdc",
		},
	},
	{
		ID:       "Venture6",
		Category: schemes.Office,
		Colors: []string{
			"#9eb060", "#d09a08", "#f2ec86", "#824f1c", "#511818", "#553876",
		},
	},
	{
		ID:       "Verve6",
		Category: schemes.Office,
		Colors: []string{
			"#ff388c", "#e40059", "#9c007f", "#68007f", "#005bd3", "#00349e",
		},
	},
	{
		ID:       "View6",
		Category: schemes.Office,
		Colors: []string{
			"#6f6f74", "#92a9b9", "#a7b789", "#b9a489", "#8d6374", "#9b7362",
		},
	},
	{
		ID:       "Violet6",
		Category: schemes.Office,
		Colors: []string{
			"#ad84c6", "#8784c7", "#5d739a", "#6997af", "#84acb6", "#6f8183",
		},
	},
	{
		ID:       "VioletII6",
		Category: schemes.Office,
		Colors: []string{
			"#92278f", "#9b57d3", "#755dd9", "#665eb8", "#45a5ed", "#5982db",
		},
	},
	{
		ID:       "Waveform6",
		Category: schemes.Office,
		Colors: []string{
			"#31b6fd", "#4584d3", "#5bd078", "#a5d028", "#f5c040", "#05e0db",
		},
	},
	{
		ID:       "Wisp6",
		Category: schemes.Office,
		Colors: []string{
			"#a53010", "#de7e18", "#9f8351", "#728653", "#92aa4c", "#6aac91",
		},
	},
	{
		ID:       "WoodType6",
		Category: schemes.Office,
		Colors: []string{
			"#d34817", "#9b2d1f", "#a28e6a", "#956251", "#918485", "#855d5d",
		},
	},
	{
		ID:       "Yellow6",
		Category: schemes.Office,
		Colors: []string{
			"#ffca08", "#f8931d", "#ce8d3e", "#ec7016", "#e64823", "#9c6a6a",
		},
	},
	{
		ID:       "YellowOrange6",
		Category: schemes.Office,
		Colors: []string{
			"#f0a22e", "#a5644e", "#b58b80", "#c3986d", "#a19574", "#c17529",
		},
	},
}
