// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import "cogentcore.org/colorimetry/colors"

// The reference data: 20 golden palettes of 14 L*a*b* tones each
// (10 primary tones 50-900 followed by 4 accent tones at offset 10),
// a light-only and a dark-only 10-tone ramp, and the per-tone
// compensation vectors used to propagate the seed deltas. The tables
// are regenerated from the published 2014 Material Design swatches
// through this module's own sRGB to L*a*b* pipeline; the compensation
// vectors are the per-tone standard deviations across the set.

// GoldenPalettes are the perceptual templates a seed color is matched
// against, ordered reds through neutrals.
var GoldenPalettes = [20][14]colors.Lab{
	{ // red
		{L: 94.67496613448057, A: 7.266733045630691, B: 1.000736628834198, Alpha: 1},
		{L: 86.78973769407388, A: 18.370756993752625, B: 4.236364030012241, Alpha: 1},
		{L: 72.09391230653085, A: 31.794828562707657, B: 13.29723713121924, Alpha: 1},
		{L: 61.793529595363935, A: 44.12952331308245, B: 20.721469922466685, Alpha: 1},
		{L: 57.194190793609394, A: 59.64503018687955, B: 34.99982178098738, Alpha: 1},
		{L: 55.6039462163573, A: 66.01290549801841, B: 47.67168436482629, Alpha: 1},
		{L: 51.66348035090647, A: 64.74880895706752, B: 43.24486839402958, Alpha: 1},
		{L: 47.0945522208775, A: 62.298389317375246, B: 40.67774643718219, Alpha: 1},
		{L: 43.77121636726099, A: 60.28636291146622, B: 40.31443937865298, Alpha: 1},
		{L: 39.55518298875464, A: 58.70370809237427, B: 41.66494313045222, Alpha: 1},
		{L: 70.17662307890306, A: 43.247976611006436, B: 25.339822727502437, Alpha: 1},
		{L: 59.807752090792206, A: 65.1938603929017, B: 37.67529969538367, Alpha: 1},
		{L: 54.340978286743564, A: 79.43426046849234, B: 39.1885405716027, Alpha: 1},
		{L: 44.44868277295062, A: 69.922453600539, B: 58.66981323247682, Alpha: 1},
	},
	{ // pink
		{L: 92.68053388274456, A: 9.515403234430785, B: -0.899414436528545, Alpha: 1},
		{L: 81.86756246431473, A: 25.056901308878555, B: -1.947530552520993, Alpha: 1},
		{L: 70.90986971997248, A: 42.21707610052555, B: -1.0951617637427802, Alpha: 1},
		{L: 61.08140355736086, A: 58.87126032261569, B: 2.1008690292338095, Alpha: 1},
		{L: 54.97969745584844, A: 68.56533878160992, B: 7.3274229848165895, Alpha: 1},
		{L: 50.87224539484704, A: 74.6046232131678, B: 15.353568245832516, Alpha: 1},
		{L: 47.27738183095541, A: 70.77858714873364, B: 11.704335199194748, Alpha: 1},
		{L: 42.58423759170324, A: 65.54122222730491, B: 7.595589530915259, Alpha: 1},
		{L: 37.97748845583925, A: 60.74365072046628, B: 2.984706194338571, Alpha: 1},
		{L: 29.69928672943341, A: 51.90487028541299, B: -4.830191831554287, Alpha: 1},
		{L: 69.21510851438335, A: 52.6380762475247, B: -0.046575462316478244, Alpha: 1},
		{L: 58.52574719497211, A: 74.26814310044143, B: 8.684451269321226, Alpha: 1},
		{L: 51.95798495886399, A: 79.82933571312178, B: 24.52458852687235, Alpha: 1},
		{L: 42.998547461258305, A: 67.89570993257776, B: 3.8666352515897673, Alpha: 1},
	},
	{ // purple
		{L: 92.43626174308149, A: 7.542944106929406, B: -6.039849699998334, Alpha: 1},
		{L: 81.07399411197626, A: 19.5638868579488, B: -15.719631758228324, Alpha: 1},
		{L: 68.71394359572248, A: 33.79994497195571, B: -26.495405488538637, Alpha: 1},
		{L: 56.59615768556593, A: 47.58568023975685, B: -36.480822016543634, Alpha: 1},
		{L: 48.00278767247458, A: 57.3086816834748, B: -43.25611797981019, Alpha: 1},
		{L: 40.66211181802924, A: 64.01912489088107, B: -48.05930677934172, Alpha: 1},
		{L: 37.6906989149765, A: 61.137643118961634, B: -49.384808040803804, Alpha: 1},
		{L: 33.562915728344485, A: 57.637394331415045, B: -51.39557674347851, Alpha: 1},
		{L: 29.865388624173747, A: 54.297385361096296, B: -52.66020114365344, Alpha: 1},
		{L: 23.16724020858922, A: 48.51765116576284, B: -55.16268237029727, Alpha: 1},
		{L: 69.44215026262337, A: 58.76512527398459, B: -44.910137453619804, Alpha: 1},
		{L: 58.491661353473575, A: 82.50085655147099, B: -61.81896174447352, Alpha: 1},
		{L: 52.93653987994887, A: 91.21732472236943, B: -69.74682615186241, Alpha: 1},
		{L: 46.66660850408692, A: 86.9781888398835, B: -83.60461514367405, Alpha: 1},
	},
	{ // deeppurple
		{L: 92.49103056806585, A: 4.71233583414482, B: -6.532874799554711, Alpha: 1},
		{L: 81.24667977796902, A: 11.506441644622056, B: -16.666606547760622, Alpha: 1},
		{L: 68.61487903274299, A: 20.39534170437446, B: -28.522023926812, Alpha: 1},
		{L: 55.60369506394642, A: 30.933548700736168, B: -41.164395544799646, Alpha: 1},
		{L: 45.83456351852875, A: 39.28807220236929, B: -50.52332587382162, Alpha: 1},
		{L: 36.608617746092634, A: 47.29686787699425, B: -59.11176997278379, Alpha: 1},
		{L: 34.18978887934813, A: 46.60426762807646, B: -59.53961945597068, Alpha: 1},
		{L: 30.52713149114367, A: 46.01498800141226, B: -60.19975341261026, Alpha: 1},
		{L: 27.445853235866387, A: 44.96180888503076, B: -60.46396071980985, Alpha: 1},
		{L: 21.986274955025188, A: 44.29296349693046, B: -60.9365387355177, Alpha: 1},
		{L: 65.28799341364949, A: 40.58537211718372, B: -53.4974932954553, Alpha: 1},
		{L: 48.02158225587097, A: 60.693593187848506, B: -81.59932543029534, Alpha: 1},
		{L: 39.52155318969962, A: 76.2784776259876, B: -95.68182153941014, Alpha: 1},
		{L: 35.07515812517633, A: 76.66667555270689, B: -91.21847147219349, Alpha: 1},
	},
	{ // indigo
		{L: 92.86314049897214, A: 1.5318297971708694, B: -6.025250179836594, Alpha: 1},
		{L: 81.83480412586935, A: 4.46094754693338, B: -15.873566706201192, Alpha: 1},
		{L: 69.77968855050317, A: 7.9043749955549085, B: -26.31708932881953, Alpha: 1},
		{L: 57.48786278425335, A: 12.681026253743843, B: -37.232023856461915, Alpha: 1},
		{L: 47.74592367500536, A: 18.520803721007894, B: -46.475409819245186, Alpha: 1},
		{L: 38.33440178202307, A: 25.57700879933919, B: -55.28224394480753, Alpha: 1},
		{L: 35.151162792411625, A: 26.231813961699018, B: -54.53701206034868, Alpha: 1},
		{L: 31.080428360578523, A: 27.07395072589014, B: -53.97505482189003, Alpha: 1},
		{L: 27.026670562045673, A: 28.16526749823292, B: -53.289875154237286, Alpha: 1},
		{L: 19.751200254697174, A: 30.607846252928784, B: -52.13866679760905, Alpha: 1},
		{L: 67.46188679524248, A: 18.307128187243173, B: -50.2550860223768, Alpha: 1},
		{L: 51.757358151247175, A: 36.29829026624004, B: -75.07202403030635, Alpha: 1},
		{L: 46.254624045710294, A: 45.31951881351581, B: -84.1054060337525, Alpha: 1},
		{L: 43.32065566970153, A: 50.82780875017917, B: -88.95003682445896, Alpha: 1},
	},
	{ // blue
		{L: 94.70682101821271, A: -2.835470712486632, B: -6.978051262070251, Alpha: 1},
		{L: 86.88398116531698, A: -5.1690769895938455, B: -17.885617495291427, Alpha: 1},
		{L: 79.04515053069129, A: -6.817747143211317, B: -28.968542081076176, Alpha: 1},
		{L: 71.15083463847529, A: -5.994760939357747, B: -39.72549822560105, Alpha: 1},
		{L: 65.48105848054628, A: -2.7357452264900606, B: -48.15471554467472, Alpha: 1},
		{L: 60.43009245589542, A: 2.0799279735116416, B: -55.10936122189105, Alpha: 1},
		{L: 55.62267490981138, A: 4.9986834570888705, B: -55.021649863433744, Alpha: 1},
		{L: 49.27006472755053, A: 8.470397417653153, B: -54.49479916938762, Alpha: 1},
		{L: 43.168286951193906, A: 11.968482129041558, B: -53.97256949041618, Alpha: 1},
		{L: 32.17757652993812, A: 18.960548953000256, B: -53.45146539150306, Alpha: 1},
		{L: 71.83043041778674, A: 5.174146108396949, B: -43.42844075344576, Alpha: 1},
		{L: 58.62336715333478, A: 16.938694061147675, B: -64.55293002794451, Alpha: 1},
		{L: 53.344407053235216, A: 24.822329789469688, B: -73.11564807590906, Alpha: 1},
		{L: 47.52573761080826, A: 39.223859436456735, B: -82.60323597915415, Alpha: 1},
	},
	{ // lightblue
		{L: 95.35713114969565, A: -4.797135495371585, B: -6.550009103513088, Alpha: 1},
		{L: 88.27942345159616, A: -10.835997392636132, B: -16.359367326864337, Alpha: 1},
		{L: 81.10008786247681, A: -15.323049712261005, B: -26.41912569204341, Alpha: 1},
		{L: 74.44713735405779, A: -16.664431325886465, B: -35.19703056178947, Alpha: 1},
		{L: 69.87836260794872, A: -14.291515814066235, B: -41.827433562807556, Alpha: 1},
		{L: 65.68851064546031, A: -9.612637046322591, B: -47.34091908799951, Alpha: 1},
		{L: 60.88357809535346, A: -7.252820321188514, B: -46.677540056686716, Alpha: 1},
		{L: 54.261663241148256, A: -3.8141849590301313, B: -45.97939724073245, Alpha: 1},
		{L: 48.10661736841058, A: -1.378999991843044, B: -44.34466975607789, Alpha: 1},
		{L: 36.34401012130411, A: 5.067811260147881, B: -43.11786439297818, Alpha: 1},
		{L: 82.33394873443997, A: -16.225985190971905, B: -27.19083437526526, Alpha: 1},
		{L: 74.68916758663373, A: -16.529087257780684, B: -39.146763540207694, Alpha: 1},
		{L: 68.21627324442544, A: -9.574596549198567, B: -49.33853111997863, Alpha: 1},
		{L: 58.21497405358818, A: 0.34255550250716915, B: -53.682729571104005, Alpha: 1},
	},
	{ // cyan
		{L: 95.69294804123834, A: -6.898702559590575, B: -3.994290829101188, Alpha: 1},
		{L: 89.5284222331436, A: -16.412389104105195, B: -9.260471734473041, Alpha: 1},
		{L: 83.32030960220264, A: -24.830363486512518, B: -14.568678357300513, Alpha: 1},
		{L: 77.35338096015593, A: -30.20170700557756, B: -18.92358689377025, Alpha: 1},
		{L: 73.45321895094452, A: -31.885903934553372, B: -21.13046365196962, Alpha: 1},
		{L: 69.97638277136251, A: -30.67985103644394, B: -23.186689061229803, Alpha: 1},
		{L: 64.4449154100487, A: -29.08337499692687, B: -21.15493895982734, Alpha: 1},
		{L: 56.998162743635575, A: -27.310815326698435, B: -17.869891076525192, Alpha: 1},
		{L: 49.754640399520255, A: -25.335383972799384, B: -15.024725240599546, Alpha: 1},
		{L: 36.52725782002123, A: -22.12964204030385, B: -9.176161318881837, Alpha: 1},
		{L: 93.29388782073022, A: -34.410498039392664, B: -10.647456488517793, Alpha: 1},
		{L: 91.20123840321361, A: -47.503754833624626, B: -13.990372484727276, Alpha: 1},
		{L: 83.57498842353483, A: -36.46515862830324, B: -25.516413113119363, Alpha: 1},
		{L: 68.77335733420632, A: -28.72227888170542, B: -25.02644332515016, Alpha: 1},
	},
	{ // teal
		{L: 94.18453591956458, A: -6.0835030676559825, B: -1.5488982372148685, Alpha: 1},
		{L: 85.68176781212101, A: -15.333169397448387, B: -2.8519882979915145, Alpha: 1},
		{L: 76.85067604573146, A: -24.844053180002323, B: -3.8750833226652626, Alpha: 1},
		{L: 68.02762046941923, A: -32.566858627979364, B: -4.015235096163106, Alpha: 1},
		{L: 61.66725562658496, A: -36.067525341878124, B: -3.4734081789885796, Alpha: 1},
		{L: 55.673102488927896, A: -36.660699724269776, B: -2.1256211304470085, Alpha: 1},
		{L: 51.0591481082885, A: -34.65019169724032, B: -1.3910514551010333, Alpha: 1},
		{L: 45.26907975539682, A: -32.13244781823574, B: -0.4526399725872876, Alpha: 1},
		{L: 39.36898961998149, A: -29.25264473362707, B: -0.03562817654823025, Alpha: 1},
		{L: 28.58362952576907, A: -24.585465505710722, B: 1.8037381231150396, Alpha: 1},
		{L: 94.19661593319468, A: -30.69238732008528, B: 1.1812379385984784, Alpha: 1},
		{L: 91.36339244709853, A: -49.51721944046683, B: 5.551919245236747, Alpha: 1},
		{L: 82.86631176794612, A: -57.53329708777494, B: 11.964103722467456, Alpha: 1},
		{L: 69.45156589071034, A: -46.18780193208122, B: 1.781082051011862, Alpha: 1},
	},
	{ // green
		{L: 95.30529826504359, A: -6.430400701462558, B: 4.2929436661769405, Alpha: 1},
		{L: 88.49014262862367, A: -15.231464835961717, B: 10.84825469423718, Alpha: 1},
		{L: 81.22616597708881, A: -24.993876136551798, B: 18.144690734817083, Alpha: 1},
		{L: 74.30361491046126, A: -35.560879567770876, B: 26.781509432647855, Alpha: 1},
		{L: 69.04309751613732, A: -42.6155557309294, B: 33.17108987494684, Alpha: 1},
		{L: 63.97742006004955, A: -48.54292281430145, B: 39.732409378114205, Alpha: 1},
		{L: 58.77795922532924, A: -46.11536570406977, B: 37.838905197165886, Alpha: 1},
		{L: 52.411085416807055, A: -43.21761485132858, B: 35.6225014448332, Alpha: 1},
		{L: 46.281385981313186, A: -40.25815962975146, B: 33.32342754418758, Alpha: 1},
		{L: 34.685654258803346, A: -34.75343698546837, B: 28.86673503446382, Alpha: 1},
		{L: 91.90325956329292, A: -27.72214078944962, B: 15.044702783836271, Alpha: 1},
		{L: 86.19373039931605, A: -51.88704631270152, B: 20.993406753990797, Alpha: 1},
		{L: 80.6817121257808, A: -70.48375422224629, B: 41.590823946691046, Alpha: 1},
		{L: 70.82270505369902, A: -66.24995567776342, B: 46.16139196424247, Alpha: 1},
	},
	{ // lightgreen
		{L: 96.70517802034662, A: -4.929971990621396, B: 6.397077367288273, Alpha: 1},
		{L: 91.66415722600448, A: -12.057017417409332, B: 16.05459756134653, Alpha: 1},
		{L: 86.22443650964792, A: -19.613633633541404, B: 26.38489947588356, Alpha: 1},
		{L: 80.8340460234204, A: -27.080160109267947, B: 37.37848668978012, Alpha: 1},
		{L: 76.79543470868538, A: -32.766586687756785, B: 45.912183269812076, Alpha: 1},
		{L: 72.90025063826768, A: -37.549129890160295, B: 53.51958724817567, Alpha: 1},
		{L: 67.21532094978002, A: -36.563040290972125, B: 50.49628327819613, Alpha: 1},
		{L: 59.91050950924907, A: -35.77010754479326, B: 46.5646518709946, Alpha: 1},
		{L: 52.5101567310345, A: -34.479028518714486, B: 42.20723274095414, Alpha: 1},
		{L: 39.41191857356252, A: -32.80460613079569, B: 35.255485732115574, Alpha: 1},
		{L: 94.4702830579826, A: -34.08422366878289, B: 47.7173360624279, Alpha: 1},
		{L: 92.44425999104209, A: -48.45847031713307, B: 69.12946225955112, Alpha: 1},
		{L: 89.5681985695947, A: -70.46708299243825, B: 85.18577732581775, Alpha: 1},
		{L: 78.74168575802405, A: -63.21553447235956, B: 74.08886635088045, Alpha: 1},
	},
	{ // lime
		{L: 97.9950568174405, A: -4.059615786802806, B: 9.355790211463866, Alpha: 1},
		{L: 94.80925874898058, A: -9.237074735289063, B: 23.23064242836914, Alpha: 1},
		{L: 91.85205498708969, A: -15.053900751995586, B: 38.861143726097126, Alpha: 1},
		{L: 88.75811812443973, A: -19.54288405696053, B: 53.71784796957733, Alpha: 1},
		{L: 86.27403862433917, A: -22.17397682799982, B: 63.97862956490788, Alpha: 1},
		{L: 84.20566526748709, A: -24.27062776798633, B: 72.79623028831487, Alpha: 1},
		{L: 78.27914806101374, A: -21.181834818414735, B: 68.82762428970919, Alpha: 1},
		{L: 70.82385536278666, A: -17.788134452434434, B: 64.00326902243094, Alpha: 1},
		{L: 62.93686444447948, A: -13.697398335755395, B: 58.51299210916675, Alpha: 1},
		{L: 49.49860862248502, A: -6.485217907301277, B: 49.674320050897414, Alpha: 1},
		{L: 96.9588425982485, A: -20.718020705517592, B: 58.36892598488734, Alpha: 1},
		{L: 96.02998825795122, A: -27.14484947206486, B: 82.1916688094886, Alpha: 1},
		{L: 93.24384682738153, A: -44.23763656198698, B: 89.84146144819914, Alpha: 1},
		{L: 85.92811085864501, A: -44.29777066872187, B: 83.6598997962048, Alpha: 1},
	},
	{ // yellow
		{L: 98.9388474662178, A: -3.0098297239847804, B: 10.765729287681491, Alpha: 1},
		{L: 97.22689405720459, A: -6.174581137554314, B: 26.229316146846116, Alpha: 1},
		{L: 95.58092572154776, A: -8.907113705625358, B: 43.56296415377257, Alpha: 1},
		{L: 94.0900914223035, A: -10.509609020249112, B: 60.20018538415772, Alpha: 1},
		{L: 93.06546374125608, A: -11.008538060533313, B: 71.76499754406333, Alpha: 1},
		{L: 92.12974645434895, A: -10.83000228500991, B: 80.90904425513494, Alpha: 1},
		{L: 87.12187972741931, A: -2.376408212682257, B: 78.14867055818875, Alpha: 1},
		{L: 80.96200057347599, A: 8.84935701401879, B: 75.05049594991918, Alpha: 1},
		{L: 75.00342373576652, A: 20.34019833082157, B: 72.24840852413324, Alpha: 1},
		{L: 65.4820733245312, A: 39.647092501791604, B: 68.34871817461851, Alpha: 1},
		{L: 97.91533017791595, A: -15.396552183361056, B: 54.170437716797416, Alpha: 1},
		{L: 97.13926356609731, A: -21.5537284127732, B: 94.47796148497562, Alpha: 1},
		{L: 91.7337393195763, A: -11.407622168325638, B: 90.55515098978549, Alpha: 1},
		{L: 86.68062702181648, A: -1.4174329741278302, B: 86.95577201629447, Alpha: 1},
	},
	{ // amber
		{L: 97.56423537173642, A: -1.4455079711719887, B: 11.881246754426122, Alpha: 1},
		{L: 93.67057572815018, A: -1.8692904571143698, B: 30.028878573096506, Alpha: 1},
		{L: 89.94571112477854, A: -1.022429632483668, B: 49.649533326881, Alpha: 1},
		{L: 86.71008782426978, A: 1.049628687223303, B: 68.7737630018304, Alpha: 1},
		{L: 83.78773607510468, A: 5.248254870863334, B: 78.92919304197758, Alpha: 1},
		{L: 81.52190991728331, A: 9.403679148922706, B: 82.69255904761553, Alpha: 1},
		{L: 78.17240574674146, A: 16.628537698036904, B: 81.09357129218886, Alpha: 1},
		{L: 73.808992411349, A: 26.536169411939813, B: 78.2175289979419, Alpha: 1},
		{L: 70.11344688751348, A: 35.30078993553087, B: 75.8750987143593, Alpha: 1},
		{L: 63.86459945835591, A: 50.946512296488336, B: 72.17814617416862, Alpha: 1},
		{L: 91.15909988373298, A: -3.8054503294011055, B: 52.5641032113954, Alpha: 1},
		{L: 87.11196878378007, A: -0.637088734964375, B: 74.70375865756402, Alpha: 1},
		{L: 82.2411962730135, A: 7.797220366943469, B: 83.8609995316422, Alpha: 1},
		{L: 76.30872770198322, A: 20.803383047571455, B: 79.85226109276306, Alpha: 1},
	},
	{ // orange
		{L: 96.30459132889135, A: 0.9231690989550123, B: 10.598431933834629, Alpha: 1},
		{L: 90.6831969763139, A: 4.103794866493704, B: 26.485785750411072, Alpha: 1},
		{L: 85.00054897965157, A: 9.047203775743196, B: 44.5140675039877, Alpha: 1},
		{L: 79.4242809757692, A: 16.452634845248447, B: 62.0872075566361, Alpha: 1},
		{L: 75.47792291100625, A: 23.39576853399916, B: 72.64346528317917, Alpha: 1},
		{L: 72.04246141632846, A: 30.681947898404005, B: 77.08578161609543, Alpha: 1},
		{L: 68.94723915526077, A: 35.22017510829134, B: 74.88423938457306, Alpha: 1},
		{L: 64.83017067756755, A: 40.912035137583516, B: 71.95959471940363, Alpha: 1},
		{L: 60.853416417015595, A: 46.414864258824075, B: 69.18060942075822, Alpha: 1},
		{L: 54.77571297820984, A: 55.28278033654471, B: 65.10192449498045, Alpha: 1},
		{L: 86.21759247285976, A: 6.465763650721379, B: 46.028369252618816, Alpha: 1},
		{L: 76.53412702975851, A: 22.132613379346576, B: 64.56784421872634, Alpha: 1},
		{L: 70.53644100878988, A: 34.27966348132993, B: 76.13817272151991, Alpha: 1},
		{L: 63.51099210054966, A: 51.864047361377565, B: 71.98144040356314, Alpha: 1},
	},
	{ // deeporange
		{L: 93.69219460603962, A: 5.7639970964756255, B: 3.1700090583564933, Alpha: 1},
		{L: 86.04629038650735, A: 15.750864629843042, B: 14.828469345765916, Alpha: 1},
		{L: 77.54009631913861, A: 27.901162320490336, B: 25.996444329127844, Alpha: 1},
		{L: 69.74095021675768, A: 41.144900924536046, B: 39.44331163139836, Alpha: 1},
		{L: 64.3708488507287, A: 51.890409271785174, B: 50.81311559980465, Alpha: 1},
		{L: 60.067803519648535, A: 61.652619193187654, B: 61.547708640510315, Alpha: 1},
		{L: 57.28707443909805, A: 60.32509736412822, B: 60.07340600623389, Alpha: 1},
		{L: 53.81004808945194, A: 58.36763916869964, B: 58.195859083376476, Alpha: 1},
		{L: 50.30134806666155, A: 56.40107748840823, B: 55.92413341042535, Alpha: 1},
		{L: 43.864775943985386, A: 52.970914028984076, B: 52.300672017027786, Alpha: 1},
		{L: 74.36682133943604, A: 33.036714243802614, B: 30.900103282363478, Alpha: 1},
		{L: 63.989238216137224, A: 52.68825406688965, B: 51.88895517107731, Alpha: 1},
		{L: 56.68806769217163, A: 70.27098958137424, B: 68.55848483772921, Alpha: 1},
		{L: 48.484367487816215, A: 65.19756589802344, B: 61.21074361241136, Alpha: 1},
	},
	{ // brown
		{L: 93.29864519881168, A: 0.9915617966964052, B: 1.442346124170757, Alpha: 1},
		{L: 82.80884018436835, A: 3.1162374293424167, B: 3.352299496993183, Alpha: 1},
		{L: 70.95492738455795, A: 5.469756931448355, B: 5.449003619499471, Alpha: 1},
		{L: 58.71293184235165, A: 7.991005091684267, B: 8.352483177678804, Alpha: 1},
		{L: 49.1502060028897, A: 10.570998574584156, B: 10.8314352358313, Alpha: 1},
		{L: 39.63199919138239, A: 13.138895099457649, B: 13.531570183755026, Alpha: 1},
		{L: 35.60099451970106, A: 12.403540671386521, B: 12.104317650356544, Alpha: 1},
		{L: 30.08426932889644, A: 11.317159073108595, B: 10.547480565661882, Alpha: 1},
		{L: 24.555012970405578, A: 10.816623064685892, B: 8.506552016793623, Alpha: 1},
		{L: 18.350550771127928, A: 10.225734063321863, B: 7.058579948744093, Alpha: 1},
		{L: 82.80884018436835, A: 3.1162374293424167, B: 3.352299496993183, Alpha: 1},
		{L: 70.95492738455795, A: 5.469756931448355, B: 5.449003619499471, Alpha: 1},
		{L: 49.1502060028897, A: 10.570998574584156, B: 10.8314352358313, Alpha: 1},
		{L: 30.08426932889644, A: 11.317159073108595, B: 10.547480565661882, Alpha: 1},
	},
	{ // grey
		{L: 98.27202360073487, A: 0.0, B: -6.031573018816516e-07, Alpha: 1},
		{L: 96.53748961423615, A: 0.0, B: -5.940019809358432e-07, Alpha: 1},
		{L: 94.09783422885042, A: 0.0, B: -5.811248371401234e-07, Alpha: 1},
		{L: 89.1772802290269, A: 0.0, B: -5.551529014269363e-07, Alpha: 1},
		{L: 76.61119593527346, A: -5.551115123125783e-14, B: -4.888258464674777e-07, Alpha: 1},
		{L: 65.11424503746709, A: 0.0, B: -4.2814196632434687e-07, Alpha: 1},
		{L: 49.23898744619521, A: 0.0, B: -3.4434826101659155e-07, Alpha: 1},
		{L: 41.142666533292996, A: 2.7755575615628914e-14, B: -3.0161377839732495e-07, Alpha: 1},
		{L: 27.974855740175222, A: 0.0, B: -2.3211066402240021e-07, Alpha: 1},
		{L: 12.740010373302407, A: 1.3877787807814457e-14, B: -1.5169721034880013e-07, Alpha: 1},
		{L: 96.53748961423615, A: 0.0, B: -5.940019809358432e-07, Alpha: 1},
		{L: 94.09783422885042, A: 0.0, B: -5.811248371401234e-07, Alpha: 1},
		{L: 76.61119593527346, A: -5.551115123125783e-14, B: -4.888258464674777e-07, Alpha: 1},
		{L: 41.142666533292996, A: 2.7755575615628914e-14, B: -3.0161377839732495e-07, Alpha: 1},
	},
	{ // bluegrey
		{L: 94.2766484772579, A: -0.637555576001092, B: -1.3135222232588672, Alpha: 1},
		{L: 85.7778767087948, A: -2.2777675689271137, B: -3.0177820250799403, Alpha: 1},
		{L: 76.12296031424903, A: -3.401491493553399, B: -5.168684381471289, Alpha: 1},
		{L: 66.16339854363885, A: -4.819617912044438, B: -7.5207023143327945, Alpha: 1},
		{L: 58.35752253877625, A: -5.719501313020514, B: -9.165993012597283, Alpha: 1},
		{L: 50.707478877170544, A: -6.837987134650225, B: -10.956058618208232, Alpha: 1},
		{L: 44.85917690423529, A: -6.411985239424656, B: -9.745123030655535, Alpha: 1},
		{L: 36.92458775655107, A: -5.319873888039672, B: -8.341946273478328, Alpha: 1},
		{L: 29.115333452190804, A: -4.168903654006129, B: -6.862998628935612, Alpha: 1},
		{L: 19.958337388305168, A: -3.3116688108783543, B: -5.448616131710904, Alpha: 1},
		{L: 85.7778767087948, A: -2.2777675689271137, B: -3.0177820250799403, Alpha: 1},
		{L: 76.12296031424903, A: -3.401491493553399, B: -5.168684381471289, Alpha: 1},
		{L: 58.35752253877625, A: -5.719501313020514, B: -9.165993012597283, Alpha: 1},
		{L: 36.92458775655107, A: -5.319873888039672, B: -8.341946273478328, Alpha: 1},
	},
	{ // warmgrey
		{L: 96.9589409495158, A: 0.3314840369474936, B: 0.11694681566905007, Alpha: 1},
		{L: 93.24795243147058, A: 0.8291694675756633, B: 0.8390435858458334, Alpha: 1},
		{L: 88.4711994144942, A: 1.5205370208134505, B: 1.0913001043623138, Alpha: 1},
		{L: 81.7410220128939, A: 1.717837653451959, B: 1.7325893340158771, Alpha: 1},
		{L: 69.80762708956853, A: 2.3239147042405373, B: 2.5681292850121107, Alpha: 1},
		{L: 58.9035631516837, A: 2.610986341036625, B: 3.3331286506958824, Alpha: 1},
		{L: 45.85243501094305, A: 2.5494688179583114, B: 2.802460042147459, Alpha: 1},
		{L: 38.38185870964516, A: 2.233035145670387, B: 2.7502616482982356, Alpha: 1},
		{L: 26.86956985573827, A: 2.8028413013732045, B: 1.706785907244046, Alpha: 1},
		{L: 13.88932722624999, A: 2.8381366455922374, B: 1.0431768386129692, Alpha: 1},
		{L: 93.24795243147058, A: 0.8291694675756633, B: 0.8390435858458334, Alpha: 1},
		{L: 88.4711994144942, A: 1.5205370208134505, B: 1.0913001043623138, Alpha: 1},
		{L: 69.80762708956853, A: 2.3239147042405373, B: 2.5681292850121107, Alpha: 1},
		{L: 38.38185870964516, A: 2.233035145670387, B: 2.7502616482982356, Alpha: 1},
	},
}

// LightPalette is the 10-tone neutral ramp used by [NewLight].
var LightPalette = [10]colors.Lab{
	{L: 100.0, A: 0.0, B: -6.122780060735522e-07, Alpha: 1},
	{L: 98.27202360073487, A: 0.0, B: -6.031573018816516e-07, Alpha: 1},
	{L: 96.53748961423615, A: 0.0, B: -5.940019809358432e-07, Alpha: 1},
	{L: 94.79624582959184, A: 0.0, B: -5.848112438755493e-07, Alpha: 1},
	{L: 93.04813343052105, A: 0.0, B: -5.755842691357316e-07, Alpha: 1},
	{L: 89.1772802290269, A: 0.0, B: -5.551529014269363e-07, Alpha: 1},
	{L: 85.62717390620756, A: 0.0, B: -5.364145128083919e-07, Alpha: 1},
	{L: 78.43137245478312, A: -5.551115123125783e-14, B: -4.984332058199925e-07, Alpha: 1},
	{L: 70.72486009431617, A: 0.0, B: -4.5775623291888223e-07, Alpha: 1},
	{L: 63.22259455235917, A: 0.0, B: -4.1815735318806446e-07, Alpha: 1},
}

// DarkPalette is the 10-tone neutral ramp used by [NewDark].
var DarkPalette = [10]colors.Lab{
	{L: 51.22315087944811, A: 0.0, B: -3.548211724435646e-07, Alpha: 1},
	{L: 43.19228956298485, A: 0.0, B: -3.124322356384823e-07, Alpha: 1},
	{L: 34.87815216307667, A: 0.0, B: -2.685480504638349e-07, Alpha: 1},
	{L: 25.76271076816291, A: 0.0, B: -2.204343929612662e-07, Alpha: 1},
	{L: 21.24673129498138, A: 0.0, B: -1.965978824181036e-07, Alpha: 1},
	{L: 16.589066326748167, A: 0.0, B: -1.720135256455535e-07, Alpha: 1},
	{L: 11.757915819916875, A: 0.0, B: -1.4651346247340769e-07, Alpha: 1},
	{L: 6.318928113230207, A: -1.3877787807814457e-14, B: -1.0005880568542125e-07, Alpha: 1},
	{L: 2.741748000656518, A: 0.0, B: -4.3414966066634975e-08, Alpha: 1},
	{L: 0.0, A: 0.0, B: 0.0, Alpha: 1},
}

// LightnessCompensation is the per-tone standard deviation of
// lightness across [GoldenPalettes].
var LightnessCompensation = [14]float64{
	1.9842539716092882,
	4.997432872155493,
	8.507916044718607,
	11.644459375793804,
	13.224276152790777,
	15.11600092760129,
	14.837065372007533,
	14.555944689600386,
	14.867634543548245,
	15.063361666644054,
	11.213698318481642,
	15.83378695542209,
	16.308125996686563,
	17.425222983312956,
}

// ChromaCompensation is the per-tone standard deviation of chroma
// across [GoldenPalettes].
var ChromaCompensation = [14]float64{
	3.4452629877324537,
	8.59753376298121,
	14.479704266478041,
	20.353954930670785,
	24.60962746238008,
	27.827889250560585,
	27.336010645463755,
	26.988233639424234,
	26.97330462095442,
	27.729326284348517,
	21.898308962604816,
	32.346707211379794,
	36.94875897702645,
	36.96632068884944,
}

// ChromaCompensationLight is the chroma compensation vector for the
// light reference ramp.
var ChromaCompensationLight = [10]float64{
	1.7226314938662268,
	4.298766881490605,
	7.239852133239021,
	10.176977465335392,
	12.30481373119004,
	13.913944625280292,
	13.668005322731878,
	13.494116819712117,
	13.48665231047721,
	13.864663142174258,
}
