package afstft

// Fixed prototype filter coefficient tables. Both tables were designed
// offline against the reconstruction conditions of the analysis/synthesis
// fold and are consumed as opaque data; see prototype.go for how hop-size
// specific windows are derived from them.

// protoFilter1024 holds the standard prototype lowpass, sampled at a hop
// resolution of 1024 (10240 coefficients covering 10 hops).
var protoFilter1024 = [10240]float64{
	-0.0025548250446517759, -0.0025619247469290908, -0.0025675753042789518, -0.0025740777975393476,
	-0.002581832854672218, -0.0025906171689352455, -0.0026000449767149577, -0.0026097444996563868,
	-0.0026194086291623461, -0.0026288002294638929, -0.0026377447647345244, -0.0026461204041109978,
	-0.0026538483330777645, -0.0026608839709249626, -0.0026672092833860445, -0.0026728262316231205,
	-0.0026777513280641647, -0.0026820112212306959, -0.0026856391996487984, -0.0026886724886542143,
	-0.0026911502109679348, -0.002693111888580779, -0.0026945963759491911, -0.0026956411296626599,
	-0.0026962817353914999, -0.0026965516276806316, -0.0026964819512854533, -0.0026961015239577646,
	-0.0026954368698746075, -0.0026945123004093658, -0.002693350024897948, -0.0026919702786948056,
	-0.0026903914593878098, -0.0026886302647503731, -0.0026867018280441126, -0.0026846198477917991,
	-0.0026823967102417934, -0.0026800436035387463, -0.002677570623177829, -0.0026749868687087524,
	-0.0026723005319178386, -0.0026695189768854203, -0.0026666488124169338, -0.0026636959573999412,
	-0.0026606656996593057, -0.0026575627488796571, -0.0026543912841458166, -0.0026511549966241436,
	-0.0026478571278732129, -0.0026445005042357353, -0.0026410875677242373, -0.0026376204037765879,
	-0.0026341007662175333, -0.0026305300997280399, -0.00262690956008801, -0.0026232400324253014,
	-0.0026195221476711626, -0.002615756297391302, -0.0026119426471321082, -0.0026080811483911921,
	-0.0026041715492930392, -0.0026002134040207896, -0.0025962060810259119, -0.002592148770006852,
	-0.0025880404876168698, -0.0025838800818276742, -0.0025796662348412298, -0.0025753974644046056,
	-0.0025710721233428413, -0.0025666883970817704, -0.0025622442988859529, -0.0025577376624859715,
	-0.0025531661317141634, -0.0025485271467082238, -0.0025438179261753442, -0.0025390354451518254,
	-0.0025341764075923522, -0.0025292372130889169, -0.0025242139169085491, -0.0025191021824886536,
	-0.0025138972254637425, -0.0025085937482609484, -0.0025031858643006044, -0.0024976670108959923,
	-0.0024920298500951182, -0.0024862661569907229, -0.002480366695505179, -0.0024743210824142363,
	-0.0024681176415108502, -0.0024617432514496911, -0.0024551831930849305, -0.0024484210051311053,
	-0.0024414383607852135, -0.0024342149824369834, -0.0024267286163768879, -0.0024189550936668377,
	-0.0024108685056745908, -0.0024024415212002353, -0.0023936458643460602, -0.0023844529561911662,
	-0.0023748346987829782, -0.0023647643491056651, -0.002354217400356684, -0.0023431723674797859,
	-0.0023316113733956533, -0.0023195204569771478, -0.0023068895701173833, -0.0022937122867294933,
	-0.0022799852942813124, -0.0022657077650148215, -0.0022508807058783963, -0.002235506371603082,
	-0.002219587810064436, -0.0022031286091886886, -0.0021861329393692546, -0.0021686060314760709,
	-0.0021505552788055357, -0.0021319921643504387, -0.0021129351395553588, -0.0020934133631890645,
	-0.0020734708289269687, -0.0020531699319913496, -0.0020325931283987709, -0.0020118412745356124,
	-0.0019910276824654026, -0.0019702678624880579, -0.0019496660982098576, -0.0019293010489260403,
	-0.0019092131627063355, -0.00188939659123438, -0.0018697974897399488, -0.0018503192411066472,
	-0.0018308335962976497, -0.0018111953631885726, -0.001791257493321201, -0.0017708835362309115,
	-0.0017499555167073964, -0.0017283769431393771, -0.0017060721531959784, -0.0016829839814982552,
	-0.0016590717213142211, -0.0016343108318854847, -0.0016086950779206064, -0.0015822408302633088,
	-0.0015549920817837031, -0.0015270235435302212, -0.0014984385859154621, -0.001469359489952969,
	-0.0014399096381683069, -0.0014101901557841124, -0.0013802557936413058, -0.0013500952972707906,
	-0.0013196196588395655, -0.0012886583948285896, -0.0012569613397306961, -0.0012242026716025361,
	-0.0011899839261801893, -0.0011538354011298279, -0.0011152496030866314, -0.0010739513877153126,
	-0.0010308798469929156, -0.00098894053819941407, -0.00094912724566911311, -0.00090541385425342688,
	-0.00085407867988251842, -0.00080658301401429963, -0.00074807614575169649, -0.000684534375543672,
	-0.00058560402265469224, -0.00047118294239280832, -0.00029186676606666974, -0.00039434748616389736,
	-0.00044696109434239312, -0.00048674835262681209, -0.00054050921319144399, -0.0005822696956140264,
	-0.00061885193474617078, -0.00065147488471483511, -0.00067841786592703435, -0.00069629837845045796,
	-0.00071849600603148, -0.0007465514692040334, -0.00076842435890106292, -0.00078131568077856924,
	-0.00080240205562582818, -0.00082603341568819307, -0.00084252653084824732, -0.00084725581420657119,
	-0.00085114705685119282, -0.00086774975860257389, -0.00088994193376749084, -0.0009125225331396169,
	-0.00093423224264808794, -0.00095502924054835124, -0.00097499062098051843, -0.00099413310295847954,
	-0.0010124490003203684, -0.0010299367730245083, -0.0010466082147748254, -0.0010624877062870449,
	-0.0010776112855905961, -0.0010920263976464276, -0.0011057904889412013, -0.0011189658155673875,
	-0.0011316081368045855, -0.0011437487103232162, -0.0011553723321591147, -0.0011663978854764801,
	-0.0011766694032251588, -0.00118596293302336, -0.0011940084995787814, -0.0012005210559266971,
	-0.001205232626281064, -0.0012079196646216763, -0.0012084227233178477, -0.0012066577950797389,
	-0.0012026193272394886, -0.0011963747293213109, -0.0011880508921720684, -0.0011778151970271561,
	-0.0011658551608701283, -0.0011523607418334337, -0.0011375116236435616, -0.001121469806653387,
	-0.0011043765369971451, -0.0010863521760416997, -0.0010674977461823307, -0.0010478972357746048,
	-0.0010276200909336069, -0.0010067235830130007, -0.00098525491035820426, -0.00096325299165127309,
	-0.00094074995965456605, -0.0009177723872845385, -0.0008943422853922038, -0.0008704779111421546,
	-0.00084619442188143342, -0.00082150440423123933, -0.00079641830298487137, -0.00077094476976638136,
	-0.00074509094746319233, -0.00071886270321860793, -0.00069226482008532446, -0.00066530115545430511,
	-0.00063797477259659025, -0.00061028805041964671, -0.00058224277548003616, -0.00055384021948474732,
	-0.00052508120487226569, -0.00049596616055843127, -0.00046649516953082377, -0.00043666800965768218,
	-0.00040648418882389926, -0.0003759429753041142, -0.00034504342412052284, -0.00031378440000257273,
	-0.00028216459745948385, -0.00025018255839147336, -0.00021783668759487173, -0.00018512526645981687,
	-0.00015204646511186878, -0.00011859835321010238, -8.4778909582270337e-05, -5.0586030851076515e-05,
	-1.6017539182913994e-05, 1.8928810727853224e-05, 5.4255325341782054e-05, 8.9964366540584934e-05,
	0.00012605834640367017, 0.00016253972243201605, 0.0001994109931639024, 0.0002366746941347786,
	0.00027433339413858964, 0.00031238969175395565, 0.00035084621210218042, 0.00038970560380860187,
	0.00042897053614171727, 0.00046864369630759397, 0.0005087277868795016, 0.00054922552334513977,
	0.00059013963175551731, 0.00063147284646137246, 0.00067322790792471543, 0.00071540756059405072,
	0.00075801455083336785, 0.00080105162490008404, 0.00084452152693713476, 0.0008884269970422967,
	0.00093277076930956069, 0.00097755556991500534, 0.001022784115208763, 0.0010684591098144266,
	0.001114583244731608, 0.0011611591954381133, 0.0012081896199883596, 0.0012556771571050919,
	0.0013036244242619641, 0.0013520340157545353, 0.0014009085007577052, 0.0014502504213680688,
	0.0015000622906293638, 0.0015503465905399574, 0.0016011057700412333, 0.0016523422429858296,
	0.0017040583860851648, 0.0017562565368355941, 0.0018089389914227028, 0.0018621080026033157,
	0.0019157657775652759, 0.0019699144757645824, 0.0020245562067400134, 0.002079693027905147,
	0.002135326942318088, 0.0021914598964289608, 0.0022480937778052226, 0.0023052304128353207,
	0.0023628715644108795, 0.0024210189295875329, 0.0024796741372248659, 0.0025388387456057788,
	0.0025985142400352999, 0.002658702030419108, 0.0027194034488224627, 0.0027806197470086045,
	0.0028423520939576956, 0.0029046015733655418, 0.0029673691811224283, 0.0030306558227714418,
	0.0030944623109460767, 0.0031587893627861578, 0.0032236375973324566, 0.0032890075328977485,
	0.0033548995844136049, 0.0034213140607529959, 0.0034882511620244194, 0.0035557109768389432,
	0.0036236934795450806, 0.0036921985274346947, 0.0037612258578970069, 0.0038307750855677662,
	0.0039008456993994724, 0.003971437059705497, 0.0040425483951531298, 0.0041141787996990817,
	0.0041863272294632653, 0.0042589924995466042, 0.0043321732807713289, 0.0044058680963470851,
	0.0044800753184527, 0.0045547931647285629, 0.0046300196946692388, 0.0047057528059096469,
	0.0047819902303936788, 0.004858729530418238, 0.0049359680945406, 0.0050137031333379383,
	0.0050919316750088102, 0.005170650560802661, 0.005249856440265723, 0.0053295457662880181,
	0.0054097147899383911, 0.0054903595550714977, 0.0055714758926904313, 0.005653059415048893,
	0.005735105509474407, 0.0058176093318949131, 0.0059005658000482976, 0.0059839695863556832,
	0.0060678151104368921, 0.0061520965312460985, 0.0062368077388047574, 0.0063219423455084913,
	0.0064074936769828346, 0.0064934547624626946, 0.0065798183246659698, 0.0066665767691476982,
	0.0067537221730757987, 0.0068412462734371935, 0.0069291404546169095, 0.0070173957353297668,
	0.007106002754870817, 0.0071949517586515502, 0.0072842325829881429, 0.0073738346391072811,
	0.0074637468963336647, 0.007553957864423165, 0.007644455575004162, 0.0077352275620894001,
	0.0078262608416197182, 0.0079175418899995256, 0.0080090566215853306, 0.0081007903650852069,
	0.0081927278388289546, 0.0082848531248671479, 0.008377149641856884, 0.0084696001166918999,
	0.0085621865548345267, 0.0086548902093073841, 0.0087476915483013177, 0.0088405702213582207,
	0.0089335050240860001, 0.0090264738613646655, 0.0091194537090025004, 0.0092124205738025877,
	0.0093053494520010677, 0.009398214286039876, 0.0094909879196381827, 0.0095836420511293818,
	0.0096761471850322529, 0.0097684725818276003, 0.0098605862059158323, 0.0099524546717323966,
	0.010044043188004882, 0.010135315500136834, 0.010226233830711586, 0.010316758818112406,
	0.010406849453263098, 0.010496463014499706, 0.010585555000590462, 0.010674079061931761,
	0.010761986929953773, 0.010849228344782387, 0.010935750981211774, 0.011021500373055441,
	0.011106419835954593, 0.011190450388735781, 0.011273530673424039, 0.01135559687403156,
	0.011436582634257444, 0.011516418974249543, 0.011595034206596008, 0.011672353851730179,
	0.0117483005529494, 0.011822793991264076, 0.01189575080031097, 0.011967084481576965,
	0.012036705320196449, 0.012104520301594757, 0.012170433029260835, 0.012234343643937006,
	0.012296148744515123, 0.012355741310924817, 0.012413010629285919, 0.012467842219578711,
	0.012520117766052935, 0.012569715050552977, 0.012616507888875351, 0.012660366070196268,
	0.012701155299503298, 0.012738737142836442, 0.012772968974979879, 0.012803703929045802,
	0.012830790847142457, 0.012854074231017915, 0.012873394191202857, 0.012888586392733561,
	0.012899481995002557, 0.012905907582643076, 0.012907685083589155, 0.012904631669534846,
	0.012896559632924558, 0.012883276233303483, 0.012864583504302826, 0.012840278010688128,
	0.012810150542692722, 0.012773985732234308, 0.012731561572480921, 0.012682648818493616,
	0.012627010242212643, 0.012564399709714579, 0.012494561042288023, 0.012417226615238731,
	0.012332115639201861, 0.01223893205782849, 0.012137361982711125, 0.012027070570982899,
	0.011907698232846934, 0.011778856035103561, 0.011640120142465675, 0.011491025111358884,
	0.011331055821943405, 0.011159637805381253, 0.010976125698993987, 0.010779789549142833,
	0.010569798692470723, 0.010345202999587255, 0.010104911389339008, 0.0098476677537820152,
	0.0095720248143233155, 0.0092763169783179091, 0.0089586339165338667, 0.0086167970244504302,
	0.0082483402662442522, 0.0078504929933085922, 0.0074201508267227097, 0.0069537944912511545,
	0.0064472696714788051, 0.0058952914312113301, 0.0052906003759526869, 0.0046231938538038647,
	0.003880879304633357, 0.0030480198821996856, 0.0020792644013682394, 0.00077786693062553681,
	0.00034712469606113633, 0.00034900842989910849, 0.00032211524451435103, 0.00026991348634998539,
	0.00020113866893438359, 0.00013505526243176778, 0.0014591953391379707, 0.0032766580961783643,
	-4.4100215116682921e-09, -0.0038373576883825862, -0.0016176198653410799, 0.00011901771663499072,
	0.00018908264247732094, 0.00026006805769410862, 0.00031219116030715955, 0.00033185077825262165,
	0.00029996217248427412, -0.00055181115678301044, -0.00255772563749577, -0.0040686729373767749,
	-0.0053941605663417177, -0.0066030488117385898, -0.0077173630977109189, -0.0087535223719351352,
	-0.0097244187859313984, -0.010638682779120065, -0.011502017066849446, -0.012318603873121482,
	-0.013091915541772595, -0.013825057101762343, -0.014520871524063571, -0.015181955952431559,
	-0.015810658514840568, -0.016409080575023084, -0.016979089190777417, -0.017522337441920693,
	-0.018040288873078011, -0.018534242904941503, -0.01900535912289953, -0.019454679282910694,
	-0.019883146541585791, -0.020291621839751514, -0.020680897607827528, -0.021051709077555474,
	-0.021404743524790073, -0.021740647764698452, -0.022060034194858035, -0.022363485646227914,
	-0.022651559264261392, -0.022924789606486886, -0.023183691110601645, -0.023428760059174197,
	-0.023660476143414742, -0.023879303708834929, -0.024085692749460645, -0.024280079704110041,
	-0.024462888097577396, -0.024634529060955632, -0.024795401758405586, -0.024945893742104312,
	-0.025086381252639539, -0.02521722947852853, -0.025338792785655814, -0.025451414925119049,
	-0.025555429226110097, -0.025651158778972699, -0.025738916612379731, -0.025819005867611523,
	-0.025891719972150395, -0.025957342814185644, -0.026016148919138983, -0.026068403628921634,
	-0.02611436328433285, -0.026154275410765392, -0.026188378907194661, -0.026216904238287889,
	-0.026240073629360625, -0.026258101263830803, -0.026271193482766537, -0.026279548986087583,
	-0.026283359034963899, -0.026282807654943681, -0.026278071839348896, -0.026269321752486214,
	-0.026256720932234558, -0.026240426491596421, -0.026220589318817593, -0.026197354275711335,
	-0.026170860393847514, -0.026141241068295077, -0.026108624248637035, -0.02607313262700308,
	-0.026034883822892655, -0.025993990564589214, -0.025950560866990439, -0.025904698205705769,
	-0.025856501687292754, -0.025806066215528105, -0.025753482653629055, -0.025698837982357746,
	-0.025642215453962079, -0.025583694741919186, -0.025523352086465372, -0.025461260435907424,
	-0.025397489583723974, -0.025332106301476059, -0.02526517446755536, -0.02519675519180848,
	-0.02512690693608215, -0.025055685630742293, -0.024983144787224736, -0.024909335606681657,
	-0.024834307084791282, -0.024758106112802391, -0.024680777574889547, -0.024602364441894776,
	-0.024522907861536769, -0.024442447245167885, -0.024361020351161191, -0.024278663365011072,
	-0.024195410976230718, -0.024111296452129959, -0.024026351708557873, -0.023940607377693063,
	-0.023854092872964167, -0.023766836451183809, -0.023678865271976421, -0.023590205454581049,
	-0.023500882132108207, -0.023410919503329061, -0.023320340882074617, -0.023229168744319913,
	-0.023137424773027909, -0.023045129900826942, -0.022952304350592739, -0.022858967674005293,
	-0.022765138788150768, -0.02267083601023465, -0.022576077090473025, -0.022480879243226951,
	-0.022385259176442941, -0.022289233119461987, -0.022192816849257495, -0.022096025715161456,
	-0.021998874662137638, -0.021901378252657193, -0.02180355068723331, -0.021705405823672756,
	-0.021606957195070178, -0.021508218026667886, -0.021409201251531819, -0.021309919525172118,
	-0.021210385239122109, -0.021110610533529191, -0.021010607308802758, -0.020910387236364007,
	-0.020809961768540768, -0.020709342147649183, -0.020608539414303947, -0.020507564414996547,
	-0.02040642780898028, -0.020305140074500079, -0.020203711514403283, -0.02010215226116727,
	-0.020000472281377812, -0.019898681379691776, -0.019796789202316614, -0.019694805240037021,
	-0.01959273883081953, -0.019490599162023586, -0.019388395272247397, -0.019286136052834964,
	-0.0191838302490701, -0.019081486461083309, -0.018979113144493447, -0.018876718610808446,
	-0.018774311027605278, -0.018671898418511825, -0.018569488663008494, -0.01846708949607018,
	-0.018364708507661476, -0.018262353142109812, -0.018160030697366724, -0.01805774832417141,
	-0.017955513025117636, -0.01785333165372386, -0.01775121091331704, -0.017649157355988099,
	-0.017547177381458296, -0.017445277235930388, -0.017343463010922003, -0.017241740642090723,
	-0.01714011590805602, -0.017038594429226176, -0.016937181666634545, -0.016835882920790007,
	-0.01673470333054615, -0.016633647871992053, -0.016532721357367389, -0.016431928434003696,
	-0.016331273583293306, -0.016230761119686132, -0.016130395189714812, -0.016030179771046715,
	-0.015930118671562275, -0.015830215528457564, -0.015730473807367969, -0.015630896801510766,
	-0.015531487630842293, -0.015432249241225359, -0.01533318440360251, -0.01523429571316918,
	-0.015135585588540782, -0.015037056270907158, -0.014938709823167022, -0.014840548129034398,
	-0.014742572892108691, -0.014644785634898849, -0.014547187697792056, -0.01444978023795615,
	-0.014352564228164059, -0.014255540455528794, -0.014158709520135414, -0.014062071833555968,
	-0.013965627617233124, -0.013869376900716015, -0.01377331951973153, -0.01367745511407297,
	-0.013581783125286524, -0.013486302794134503, -0.013391013157813523, -0.013295913046902844,
	-0.013201001082017891, -0.013106275670140562, -0.013011735000596479, -0.012917377040647221,
	-0.012823199530628228, -0.012729199978784999, -0.012635375655319874, -0.012541723586167288,
	-0.01244824054604932, -0.012354923050911163, -0.012261767349655093, -0.01216876941511022,
	-0.012075924934169899, -0.011983229297022046, -0.011890677585390131, -0.011798264559695628,
	-0.011705984645042454, -0.011613831915915687, -0.011521800079474277, -0.011429882457306603,
	-0.011338071965503207, -0.011246361092886212, -0.011154741877217501, -0.011063205879189776,
	-0.01097174415398173, -0.01088034722013635, -0.010789005025494193, -0.010697706909883762,
	-0.01060644156423865, -0.010515196985773505, -0.010423960428811016, -0.010332718350805214,
	-0.010241456353057666, -0.010150159115566361, -0.010058810325387477, -0.0099673925978228609,
	-0.0098758873896766779, -0.0097842749037481205, -0.0096925339836497482, -0.0096006419979624055,
	-0.0095085747126632033, -0.0094163061506978788, -0.0093238084375227293, -0.0092310516314293555,
	-0.0091380035375060783, -0.0090446295042151646, -0.0089508922018209005, -0.0088567513823518181,
	-0.0087621636215189577, -0.0086670820441800238, -0.0085714560365951955, -0.0084752309522952273,
	-0.008378347820098846, -0.0082807430724138251, -0.0081823483174819148, -0.0080830901940364009,
	-0.0079828903651103355, -0.0078816657350877298, -0.0077793290132520069, -0.0076757898027139905,
	-0.0075709564713749671, -0.007464739167710256, -0.0073570544835317581, -0.0072478324374720656,
	-0.0071370266401064369, -0.0070246286541642304, -0.0069106875688183574, -0.0067953354572919834,
	-0.0066788183664930594, -0.0065615304550635861, -0.0064440457664140952, -0.006327138561322521,
	-0.0062117808830010812, -0.0060991071326256625, -0.0059903399841087787, -0.0058866768464758785,
	-0.0057891391131804724, -0.005698393410541667, -0.0056145752152609273, -0.0055371762788173793,
	-0.0054650685793629786, -0.0053966979480676259, -0.005330399723606348, -0.0052647230450550454,
	-0.0051986517225202991, -0.0051316732332664945, -0.0050637210560416923, -0.004995053628444563,
	-0.0049261287213621047, -0.0048575049152777983, -0.0047897737438554345, -0.0047235081849641746,
	-0.0046592082896505576, -0.0045972337869386107, -0.0045377405603300013, -0.0044806821089934355,
	-0.0044259316237561666, -0.0043732354781970293, -0.0043205629922301748, -0.0042578779764717405,
	-0.0041539485291467301, -0.0039543173729796556, -0.0037191605932179353, -0.0036495332184249192,
	-0.0036818030522950272, -0.0036397062472417223, -0.003498832933454685, -0.0034403390883001434,
	-0.0033985802756197657, -0.0032631979481805053, -0.0030396363798718372, -0.0028804010460440213,
	-0.0027695872951458006, -0.0026363645751776611, -0.0024571494922262689, -0.0022858179010983438,
	-0.0020577516247705179, -0.001763996793282015, -0.0013913021113657535, -0.0014296891714388131,
	-0.0016847053779966267, -0.0019256810321718501, -0.0020619303348729952, -0.0021483022698847525,
	-0.0022905455453765822, -0.0023516625024850028, -0.0024597436103108838, -0.0025799470480518515,
	-0.0026618286745187813, -0.0027164647277249086, -0.0027706510659074898, -0.0028364388901618493,
	-0.0029125678837835694, -0.0029940779685071299, -0.0030765145289087218, -0.0031566706657713255,
	-0.0032324119316646457, -0.0033023971960847421, -0.0033658718547244539, -0.0034225553740434471,
	-0.0034725967490090953, -0.0035165550218989395, -0.0035553660316666488, -0.0035902722747435064,
	-0.0036227125221108538, -0.0036541858299897643, -0.0036861152675806501, -0.003719735730414946,
	-0.0037560188058352582, -0.0037956333837740599, -0.0038389315906933387, -0.003885948508329116,
	-0.0039364089545671247, -0.0039897416409475231, -0.0040451068150930301, -0.0041014451458494207,
	-0.0041575515992427186, -0.0042121699344045208, -0.004264095943373636, -0.004312275270514491,
	-0.0043558850815519365, -0.0043943943698962953, -0.0044276013412862291, -0.0044556470232883947,
	-0.0044790035972902117, -0.0044984361387526463, -0.0045149386946101728, -0.0045296497866001446,
	-0.0045437572084321811, -0.004558405303726306, -0.0045746178117238795, -0.0045932453700822115,
	-0.0046149404795436102, -0.0046401568283244536, -0.0046691662969767182, -0.0047020860814892956,
	-0.0047389093766102746, -0.0047795348718765148, -0.0048237921619146522, -0.0048714617201049866,
	-0.0049222892741933519, -0.0049759952999864363, -0.0050322809473056836, -0.005090832014589093,
	-0.0051513225572592854, -0.0052134193487568172, -0.00527678779450133, -0.0053410991974237832,
	-0.0054060386933205851, -0.0054713128727619381, -0.0055366561319729352, -0.0056018350792832305,
	-0.005666650727001803, -0.00573093858150279, -0.0057945670104310749, -0.0058574343931243463,
	-0.0059194655625201568, -0.0059806079721267192, -0.0060408279121070899, -0.006100106987306184,
	-0.0061584389755124404, -0.0062158271132497301, -0.0062722818084864525, -0.0063278187508346555,
	-0.006382457375108546, -0.0064362196289232407, -0.0064891289956897809, -0.006541209728266763,
	-0.0065924862539045058, -0.0066429827168783435, -0.0066927226307326752, -0.0067417286170354876,
	-0.0067900222118569805, -0.0068376237248234245, -0.0068845521386070316, -0.0069308250392461617,
	-0.0069764585691037056, -0.0070214673977223958, -0.0070658647036974595, -0.0071096621654675824,
	-0.007152869957159416, -0.0071954967472176333, -0.0072375496978648235, -0.0072790344638064865,
	-0.0073199551888776474, -0.0073603144995382204, -0.0074001134942783047, -0.0074393517281013954,
	-0.0074780271913233833, -0.0075161362819626447, -0.0075536737710088959, -0.0075906327598472701,
	-0.0076270046291045893, -0.0076627789779813204, -0.0076979435536058656, -0.0077324841688209646,
	-0.0077663846080033927, -0.007799626519379735, -0.0078321892928389352, -0.0078640499216049327,
	-0.0078951828465075417, -0.0079255597809015036, -0.0079551495149204898, -0.0079839176962273016,
	-0.0080118265859765222, -0.0080388347871186705, -0.0080648969427436646, -0.0080899634018099433,
	-0.0081139798495222498, -0.0081368868995608575, -0.0081586196453773494, -0.0081791071678891051,
	-0.0081982719971694738, -0.0082160295261986312, -0.0082322873754833749, -0.008246944708467395,
	-0.0082598914992548164, -0.0082710077564117183, -0.008280162709681585, -0.0082872139705245547,
	-0.0082920066832083104, -0.008294372689381449, -0.0082941297396239809, -0.0082910807957452815,
	-0.0082850134826101367, -0.0082756997652980949, -0.0082628959475224192, -0.0082463431094786932,
	-0.0082257681259029179, -0.0082008854243996749, -0.0081713996530798205, -0.0081370094127277501,
	-0.0080974121502538944, -0.0080523101693101371, -0.0080014174251993291, -0.0079444662194493448,
	-0.0078812118864932702, -0.0078114316795822219, -0.0077349105439847429, -0.0076513997116503989,
	-0.0075605205808384713, -0.007461558349684423, -0.0073530299352679157, -0.0072317831441546755,
	-0.0070911373490923062, -0.0069172523778671937, -0.0066831589383754787, -0.0063428396627843945,
	-0.0058511323172886539, -0.0053497711691205428, -0.0049817077536707787, -0.0047245003634692646,
	-0.0045361289364379311, -0.0043879842198233585, -0.0042638355441818676, -0.0041550636858341157,
	-0.004057123077045522, -0.0039675601478824504, -0.0038849930860274436, -0.0038085933407831681,
	-0.0037378192311600927, -0.003672277346804244, -0.0036116502097367021, -0.0035556590137883802,
	-0.0035040451412882536, -0.0034565616991595943, -0.003412970281419141, -0.0033730403173505615,
	-0.0033365495611597661, -0.0033032849533420777, -0.0032730434651937769, -0.0032456327513240065,
	-0.0032208715515332528, -0.0031985898439535481, -0.0031786287798793002, -0.0031608404413776474,
	-0.0031450874638680169, -0.0031312425621813581, -0.0031191879934124498, -0.003108814982546804,
	-0.0031000231334227298, -0.0030927198400338318, -0.0030868197105809576, -0.0030822440126062299,
	-0.0030789201448860274, -0.0030767811396202483, -0.0030757651968263758, -0.0030758152516315975,
	-0.0030768785742740553, -0.0030789064020011183, -0.0030818536016283507, -0.0030856783612529907,
	-0.0030903419094585817, -0.0030958082602745686, -0.003102043982141367, -0.0031090179891614892,
	-0.0031167013529490618, -0.0031250671336564228, -0.0031340902281818475, -0.0031437472349343846,
	-0.0031540163330584141, -0.0031648771753321108, -0.003176310793309987, -0.0031882995138289454,
	-0.0032008268855915549, -0.0032138776150376332, -0.0032274375101679436, -0.0032414934319129904,
	-0.0032560332515129587, -0.0032710458132873045, -0.0032865209016699989, -0.0033024492114743309,
	-0.0033188223202641177, -0.0033356326616125649, -0.0033528734979090739, -0.003370538891220741,
	-0.0033886236705244206, -0.0034071233933930059, -0.0034260342999343925, -0.003445353256438053,
	-0.0034650776857679186, -0.0034852054810394282, -0.0035057348986497067, -0.003526664425221291,
	-0.0035479926142105898, -0.0035697178838570835, -0.0035918382696705398, -0.0036143511217094368,
	-0.0036372527356798253, -0.0036605379048840832, -0.0036841993778626209, -0.0037082272041819931,
	-0.0037326079483376556, -0.0037573237493651857, -0.0037823512018596806, -0.0038076600332850514,
	-0.0038332115536485545, -0.0038589568581925979, -0.003884834773634467, -0.0039107695561618385,
	-0.0039366683778203019, -0.0039624186800549235, -0.0039878855309445948, -0.0040129091952853732,
	-0.0040373032079966285, -0.0040608533169224888, -0.0040833177060025415, -0.0041044288907676491,
	-0.0041238975583126536, -0.0041414183845531576, -0.0041566775152538536, -0.0041693610123963044,
	-0.0041791632596802223, -0.004185794222368905, -0.0041889846568622718, -0.0041884888577610807,
	-0.0041840851982238737, -0.0041755753789924329, -0.0041627837795289386, -0.0041455585088709225,
	-0.0041237756936045519, -0.0040973482921393706, -0.0040662403627712718, -0.0040304872430462881,
	-0.0039902214186468173, -0.0039457027806842548, -0.0038973503055180197, -0.0038457699543159272,
	-0.0037917712461884045, -0.0037363635625214937, -0.0036807241471933207, -0.003626133804260653,
	-0.0035738828733264524, -0.0035251571798330253, -0.0034809190302464905, -0.003441800596572574,
	-0.0034080259961379151, -0.0033793744944899486, -0.0033551914287401137, -0.0033344467700806533,
	-0.0033158345391864578, -0.0032978998655272284, -0.0032791749824422063, -0.003258302982812948,
	-0.0032341315225489706, -0.0032057682866282909, -0.0031726021151260741, -0.0031343025111999689,
	-0.0030908124668894929, -0.0030423456471603883, -0.0029893913925390452, -0.0029327219770911542,
	-0.0028733881655166409, -0.0028126844763738221, -0.0027520685448829295, -0.0026930309970531053,
	-0.0026369291963504724, -0.0025848122088174422, -0.0025372685729365468, -0.0024943197271451245,
	-0.0024553613999320923, -0.0024191310335888428, -0.0023836657326060441, -0.0023462224965476114,
	-0.0023031581884864587, -0.002249853092684515, -0.0021812533758372482, -0.0020953913456030113,
	-0.0020034339482184098, -0.0019344316387862671, -0.0018991785927123723, -0.0018411981178248584,
	-0.0017250146173118088, -0.0016764512810897086, -0.0015521421550147713, -0.0014433993710979871,
	-0.0012862683428215905, -0.0010706605201915502, -0.00088821486925853344, -0.0012537556791205838,
	-0.0013846970103175728, -0.0014836324160217244, -0.0016821457728399213, -0.0018132123958718176,
	-0.0019403403643409288, -0.0020583976757788114, -0.002114184987475507, -0.002093943651896071,
	-0.002142292916478519, -0.0022601752347881734, -0.0023411137397965015, -0.0023360737632288865,
	-0.0024188114410108809, -0.0025579715819570221, -0.0026043077244071716, -0.0025053420973972142,
	-0.0024414449017269501, -0.002475314785817135, -0.0025481910329169881, -0.0026270111185842087,
	-0.0027025675404913833, -0.0027735700258609171, -0.0028399458260923252, -0.0029014399894521591,
	-0.0029577705893939856, -0.0030088401186633487, -0.0030547772780222093, -0.0030958971878342679,
	-0.0031326493636593829, -0.0031655723402111324, -0.0031952462123252061, -0.0032222246546139348,
	-0.0032469312157095451, -0.0032695208074765788, -0.0032897348834100009, -0.0033068077169279967,
	-0.0033194903184467646, -0.0033262270003447557, -0.0033254510763874329, -0.0033159012284806927,
	-0.0032968484632035096, -0.0032681752234910138, -0.0032303209943640638, -0.0031841511398671071,
	-0.0031308033121587283, -0.0030715421563412386, -0.0030076354060408414, -0.0029402589230270422,
	-0.002870435872706053, -0.0027990098773692023, -0.0027266456339359296, -0.002653847073466963,
	-0.002580983591692905, -0.002508317546078739, -0.0024360291874975099, -0.0023642374590891703,
	-0.0022930164604084021, -0.0022224080380536461, -0.002152431192526652, -0.0020830889945062155,
	-0.0020143736122032671, -0.0019462699343690553, -0.0018787581626688531, -0.0018118156540804103,
	-0.0017454182206099599, -0.0016795410378388452, -0.0016141592723316026, -0.0015492485075063846,
	-0.0014847850253884153, -0.0014207459859690759, -0.001357109533273945, -0.0012938548507677276,
	-0.001230962180685225, -0.0011684128188487373, -0.0011061890929116888, -0.0010442743297753205,
	-0.00098265281628270862, -0.00092130975610570445, -0.00086023122487757385, -0.00079940412500111968,
	-0.00073881614111054609, -0.00067845569683938178, -0.00061831191331251445, -0.00055837456961315552,
	-0.0004986340653554619, -0.00043908138541107308, -0.00037970806677834336, -0.0003205061675450794,
	-0.00026146823786911877, -0.000202587292885104, -0.00014385678743701301, -8.5270592532188478e-05,
	-2.6822973411298447e-05, 3.1491430868897975e-05, 8.9677626439926071e-05, 0.00014774028230904798,
	0.00020568374682006503, 0.00026351206297337769, 0.00032122898268482729, 0.00037883798005887664,
	0.00043634226374503866, 0.00049374478844307337, 0.00055104826561644155, 0.00060825517347021013,
	0.00066536776624487033, 0.00072238808287395848, 0.00077931795504965901, 0.00083615901473764703,
	0.00089291270117894156, 0.00094958026741398082, 0.0010061627863618069, 0.001062661156484326,
	0.0011190761070639793, 0.0011754082031507787, 0.0012316578500145585, 0.0012878252976204459,
	0.0013439106444519061, 0.0013999138412542527, 0.001455834694481524, 0.0015116728695059446,
	0.0015674278936057878, 0.0016230991587469299, 0.0016786859241719849, 0.0017341873188102474,
	0.001789602343521069, 0.001844929873182104, 0.0019001686586335022, 0.0019553173284886749,
	0.0020103743908210479, 0.002065338234736429, 0.002120207131839556, 0.0021749792376030822,
	0.0022296525926470754, 0.0022842251239363182, 0.0023386946459025538, 0.0023930588614981853,
	0.0024473153631882696, 0.002501461633886367, 0.0025554950478402895, 0.0026094128714729816,
	0.0026632122641840443, 0.002716890279116633, 0.002770443863894136, 0.0028238698613316047,
	0.0028771650101257333, 0.0029303259455273276, 0.0029833492000001759, 0.0030362312038697617,
	0.0030889682859649922, 0.0031415566742558532, 0.0031939924964906759, 0.0032462717808342777,
	0.003298390456510601, 0.0033503443544513423, 0.0034021292079530674, 0.003453740653344123,
	0.0035051742306632617, 0.0035564253843506466, 0.0036074894639539683, 0.0036583617248486773,
	0.0037090373289734961, 0.0037595113455836013, 0.0038097787520180396, 0.0038598344344856032,
	0.0039096731888647804, 0.0039592897215371741, 0.004008678650148566, 0.0040578345045727982,
	0.0041067517276806046, 0.0041554246762351187, 0.0042038476217754195, 0.004252014751503534,
	0.0042999201691738135, 0.0043475578959982098, 0.0043949218715423413, 0.0044420059546235579,
	0.0044888039242031805, 0.0045353094802728306, 0.0045815162447279071, 0.0046274177622273689,
	0.0046730075010327533, 0.0047182788538262434, 0.0047632251385009801, 0.004807839598918868,
	0.0048521154056333114, 0.0048960456565696848, 0.0049396233776605987, 0.0049828415234287205,
	0.005025692977513767, 0.0050681705531370452, 0.0051102669934979398, 0.0051519749720972509,
	0.0051932870929808214, 0.0052341958908984154, 0.0052746938313705093, 0.005314773310658303,
	0.0053544266556299746, 0.0053936461235171351, 0.0054324239015550784, 0.005470752106501115,
	0.0055086227840241394, 0.0055460279079597961, 0.0055829593794115744, 0.0056194090257627336,
	0.0056553685994273923, 0.0056908297765430283, 0.0057257841554499075, 0.0057602232550083583,
	0.0057941385127388868, 0.0058275212827796257, 0.0058603628336552967, 0.0058926543458527499,
	0.0059243869091974285, 0.0059555515200259528, 0.0059861390781499072, 0.0060161403836061144,
	0.0060455461331892476, 0.0060743469167618951, 0.0061025332133391114, 0.0061300953869425348,
	0.0061570236822215945, 0.006183308219838036, 0.0062089389916110838, 0.0062339058554204277,
	0.0062581985298647046, 0.0062818065886737174, 0.0063047194548721689, 0.0063269263946940345,
	0.0063484165112460888, 0.0063691787379201309, 0.0063892018315533103, 0.0064084743653368163,
	0.0064269847214728964, 0.0064447210835812526, 0.0064616714288556259, 0.0064778235199721363,
	0.006493164896751189, 0.0065076828675750022, 0.006521364500563699, 0.0065341966145122353,
	0.0065461657695924363, 0.0065572582578226294, 0.0065674600933101337, 0.006576757002269948,
	0.0065851344128249221, 0.0065925774445923886, 0.0065990708980618205, 0.0066045992437701144,
	0.0066091466112790705, 0.0066126967779616564, 0.0066152331576024934, 0.0066167387888186177,
	0.0066171963233062651, 0.0066165880139193358, 0.0066148957025848045, 0.0066121008080599454,
	0.0066081843135357768, 0.0066031267540900248, 0.0065969082039923519, 0.0065895082638631978,
	0.006580906047686041, 0.0065710801696712215, 0.0065600087309677741, 0.0065476693062161704,
	0.0065340389299337366, 0.0065190940827194654, 0.0065028106772624557, 0.0064851640441332022,
	0.0064661289173319828, 0.0064456794195637303, 0.0064237890472013913, 0.006400430654893494,
	0.0063755764397633368, 0.0063491979251384762, 0.0063212659437390335, 0.0062917506202430501,
	0.0062606213531340004, 0.0062278467957233227, 0.0061933948362249743, 0.006157232576743602,
	0.0061193263110190963, 0.0060796415007511985, 0.0060381427503046993, 0.0059947937795717648,
	0.0059495573947398236, 0.0059023954566810493, 0.0058532688466445036, 0.0058021374288877809,
	0.0057489600098361744, 0.0056936942932967185, 0.0056362968311803128, 0.0055767229690960891,
	0.0055149267860669501, 0.0054508610274728864, 0.0053844770301449312, 0.0053157246382969214,
	0.0052445521086803108, 0.0051709060029548008, 0.0050947310647635937, 0.0050159700783536645,
	0.0049345637047514537, 0.0048504502904527331, 0.0047635656422655732, 0.0046738427603146178,
	0.0045812115192442673, 0.0044855982853455375, 0.0043869254547420052, 0.0042851108950821577,
	0.0041800672707843567, 0.0040717012304887883, 0.0039599124362634623, 0.0038445924194081618,
	0.0037256232607632612, 0.0036028761193287431, 0.0034762096788047746, 0.0033454686561770692,
	0.0032104826276378473, 0.0030710655752069814, 0.0029270167150037274, 0.002778123238547597,
	0.0026241653266760577, 0.0024649226120429446, 0.0023001780751688485, 0.0021297085086655573,
	0.0019532391730479569, 0.001770329646173105, 0.0015801782756503196, 0.001381462591619419,
	0.0011725518065312133, 0.00095153453210776505, 0.00071217769494326172, 0.00045961077664480272,
	0.0019172306149643991, 0.0028554550166475217, 0.0033809800507983807, 0.0035126583112284997,
	0.003169156096697425, 0.0020986920571405441, 0.00027431805599362154, 0.0003838747509877347,
	4.4100215116683054e-09, 0.00044956314752424466, 0.00030410070872202992, -0.0018494765184515799,
	-0.0029792004310326015, -0.0033845297495314211, -0.0032768150624341683, -0.0027150775980218137,
	-0.0016567437204731983, 0.00032604336853137505, 0.00087605748822052506, 0.0012701632369176235,
	0.0016297679521319148, 0.0019730656365509387, 0.0023049953966920622, 0.0026286436123291357,
	0.0029460712325761682, 0.0032582632782996064, 0.0035655188277446729, 0.0038678341935389515,
	0.0041651228872174317, 0.0044573073149652169, 0.0047443431736744384, 0.005026217021130275,
	0.0053029369937961706, 0.0055745244572595149, 0.0058410085856409159, 0.006102423618635393,
	0.0063588079406167669, 0.0066102041646501882, 0.0068566596274782102, 0.0070982269278302597,
	0.0073349643144230772, 0.0075669358461721231, 0.0077942113167461914, 0.0080168659724216777,
	0.0082349800679146785, 0.0084486383080466, 0.0086579292195054676, 0.0088629444902341981,
	0.0090637783063056612, 0.0092605267087235588, 0.0094532869860177431, 0.0096421571130136854,
	0.0098272352417591493, 0.010008619247213819, 0.010186406327792472, 0.010360692659073436,
	0.010531573097776362, 0.010699140932364751, 0.010863487676223679, 0.011024702899208563,
	0.011182874093392886, 0.011338086568998252, 0.011490423376723629, 0.011639965252979261,
	0.011786790584835687, 0.011930975391815578, 0.012072593321964944, 0.012211715659933536,
	0.01234841134507347, 0.012482746997814742, 0.012614786952812523, 0.012744593297562347,
	0.012872225915369011, 0.012997742531716512, 0.013121198763229244, 0.01324264816854131,
	0.013362142300499145, 0.013479730759217058, 0.013595461245586042, 0.013709379614905754,
	0.013821529930370124, 0.013931954516185185, 0.014040694010142893, 0.014147787415509917,
	0.014253272152119656, 0.014357184106584228, 0.014459557681560318, 0.014560425844024437,
	0.014659820172525337, 0.014757770903392968, 0.01485430697589561, 0.014949456076342561,
	0.015043244681135996, 0.015135698098782759, 0.015226840510878135, 0.015316695012079329,
	0.015405283649086013, 0.015492627458648779, 0.015578746504627304, 0.015663659914119384,
	0.015747385912683799, 0.015829941858679211, 0.015911344276741658, 0.015991608890421682,
	0.01607075065400344, 0.016148783783525696, 0.016225721787024881, 0.016301577494019875,
	0.016376363084255968, 0.016450090115726297, 0.016522769551987136, 0.016594411788782466,
	0.01666502667999346, 0.016734623562925901, 0.016803211282949791, 0.016870798217502599,
	0.016937392299468293, 0.017003001039942806, 0.017067631550395961, 0.01713129056423927,
	0.017193984457808401, 0.017255719270768553, 0.017316500725949948, 0.017376334248621048,
	0.017435224985205375, 0.017493177821448741, 0.017550197400042062, 0.017606288137705289,
	0.017661454241737741, 0.01771569972603914, 0.01776902842660644, 0.017821444016510271,
	0.017872950020355678, 0.017923549828230818, 0.017973246709148225, 0.018022043823981815,
	0.018069944237904624, 0.01811695093233032, 0.018163066816363389, 0.018208294737761626,
	0.018252637493415602, 0.018296097839349507, 0.018338678500247788, 0.018380382178512681,
	0.018421211562857663, 0.018461169336441912, 0.018500258184551706, 0.018538480801826112,
	0.018575839899084051, 0.018612338209625861, 0.018647978495202468, 0.018682763551512851,
	0.018716696213297197, 0.018749779359024426, 0.018782015915180583, 0.018813408860167333,
	0.018843961227818357, 0.018873676110542432, 0.018902556662102301, 0.018930606100039417,
	0.018957827707752711, 0.018984224836242392, 0.019009800905528323, 0.019034559405753413,
	0.01905850389798237, 0.019081638014705974, 0.019103965460063543, 0.019125490009791492,
	0.01914621551091247, 0.019166145881172648, 0.019185285108242495, 0.019203637248688683,
	0.019221206426729111, 0.019237996832786597, 0.01925401272184556, 0.01926925841162954,
	0.019283738280604919, 0.019297456765828537, 0.019310418360644753, 0.019322627612251436,
	0.019334089119122339, 0.019344807528333698, 0.019354787532779687, 0.019364033868285689,
	0.019372551310666519, 0.019380344672613833, 0.019387418800685709, 0.019393778572091715,
	0.019399428891498087, 0.019404374687786951, 0.019408620910784092, 0.019412172527970107,
	0.019415034521177051, 0.019417211883283887, 0.019418709614915014, 0.019419532721148852,
	0.019419686208246072, 0.019419175080401543, 0.019418004336527562, 0.019416178967073403,
	0.019413703950887561, 0.019410584252127688, 0.019406824817223327, 0.019402430571894932,
	0.019397406418235435, 0.019391757231856498, 0.019385487859103837, 0.019378603114344736,
	0.019371107777330827, 0.019363006590638641, 0.019354304257189744, 0.019345005437853526,
	0.019335114749133079, 0.019324636760936004, 0.019313575994431412, 0.019301936919993167,
	0.019289723955230445, 0.019276941463104363, 0.019263593750132042, 0.019249685064676163,
	0.019235219595319437, 0.019220201469322712, 0.019204634751164823, 0.019188523441162501,
	0.019171871474167174, 0.019154682718336438, 0.019136960973976744, 0.019118709972453209,
	0.019099933375162848, 0.019080634772565781, 0.019060817683270104, 0.019040485553163438,
	0.019019641754585214, 0.018998289585532534, 0.018976432268890883, 0.018954072951681413,
	0.018931214704339675, 0.01890786051987443, 0.018884013313224771, 0.018859675920385701,
	0.018834851097583823, 0.018809541520373594, 0.018783749782653993, 0.018757478395584875,
	0.018730729786380695, 0.018703506296956576, 0.018675810182397602, 0.018647643609221509,
	0.018619008653398154, 0.018589907298087776, 0.018560341431053399, 0.018530312841698413,
	0.018499823217674235, 0.018468874140996083, 0.018437467083596223, 0.01840560340223777,
	0.018373284332698719, 0.018340510983127136, 0.018307284326454305, 0.018273605191737336,
	0.018239474254286913, 0.018204892024414041, 0.018169858834609708, 0.018134374824942311,
	0.018098439926429771, 0.018062053842106282, 0.018025216025463735, 0.017987925655898834,
	0.017950181610740683, 0.01791198243336721, 0.017873326296839041, 0.017834210962384401,
	0.017794633731956569, 0.017754591393946063, 0.017714080160964308, 0.017673095598410547,
	0.017631632542280094, 0.017589685004359045, 0.017547246062554717, 0.017504307733612348,
	0.017460860824830924, 0.01741689476057388, 0.017372397378360663, 0.017327354687601975,
	0.017281750583150613, 0.01723556650200532, 0.017188781009641517, 0.017141369297449787,
	0.017093302567341664, 0.017044547272044068, 0.016995064169701521, 0.016944807138526616,
	0.01689372168086576, 0.016841743026056386, 0.016788793718756637, 0.016734780557250896,
	0.016679590732411143, 0.016623087028688737, 0.016565102013338592, 0.016505431306811126,
	0.016443826360181626, 0.016379987724653097, 0.016313560583066163, 0.016244135172546782,
	0.016171255294512032, 0.016094437882646161, 0.016013205181143651, 0.015927128253497156,
	0.015835875973133073, 0.015739257230932824, 0.015637238093057393, 0.015529916434503101,
	0.015417450465797178, 0.015299961224903151, 0.015177446633583036, 0.015049740721932483,
	0.014916528088175186, 0.014777398720862237, 0.01463191778768244, 0.014479689903240611,
	0.014320408676697951, 0.014153891586804968, 0.013980104295994519, 0.013799178066066276,
	0.013611420668723522, 0.013417315961604283, 0.01321749880141331, 0.013012675492302323,
	0.012803432162534966, 0.012589867984830186, 0.012371166540434329, 0.012145884463671522,
	0.011915257624270474, 0.011692947531168767, 0.011496182383095724, 0.011301482582712538,
	0.011098659685629272, 0.010882441603589641, 0.01065969051980281, 0.01041558355640188,
	0.010133326266844725, 0.0098132536854088938, 0.0094725595012561548, 0.0091009046666210187,
	0.008683728238712508, 0.0082097505052350361, 0.0076470179059091748, 0.0069672830260017445,
	0.006374967662430054, 0.0056083050485423924, 0.0042340388376769346, 0.0032486569743720422,
	0.0037004240252227916, 0.0040604634187547213, 0.0042781861333695964, 0.0044651623328799839,
	0.0046263004105628024, 0.0047822071122432669, 0.0049218821075673836, 0.0050465432484335495,
	0.0051730547904567277, 0.0053001064538123824, 0.0054189591048074753, 0.0055307462424818207,
	0.0056371388079093651, 0.0057382435515626095, 0.0058342146465663134, 0.0059258528102031369,
	0.0060144144053358561, 0.0061012244763125369, 0.0061873465171648906, 0.0062733829759772028,
	0.006359421113579366, 0.006445115536103478, 0.0065298712361420794, 0.0066130631291910985,
	0.0066942201250065354, 0.0067731225784400089, 0.0068498010617746973, 0.006924461116713642,
	0.0069973766666216403, 0.0070687917277588632, 0.0071388554473763664, 0.0072076004837493771,
	0.0072749645142771296, 0.0073408481265914982, 0.0074051961366901672, 0.0074680819473562244,
	0.007529768526804855, 0.0075907206285147555, 0.0076515549085064954, 0.0077129349814672272,
	0.0077754385335765137, 0.0078394344792915797, 0.0079050057758041654, 0.0079719394474176905,
	0.0080397848743629478, 0.0081079613762293813, 0.0081758831337979763, 0.0082430675366559746,
	0.0083092019874282299, 0.0083741598601239763, 0.0084379722748622096, 0.0085007728134030101,
	0.0085627347172787041, 0.0086240159027715247, 0.0086847199981972892, 0.0087448750359504779,
	0.0088044272061905283, 0.0088632453515864983, 0.0089211319440409085, 0.0089778372711016678,
	0.0090330747944672614, 0.0090865366989781714, 0.0091379093088583378, 0.0091868882508103853,
	0.0092331930679799504, 0.0092765806202119837, 0.0093168562830461057, 0.0093538818860739673,
	0.0093875795982572528, 0.0094179315079733657, 0.0094449752791267941, 0.0094687967893537246,
	0.0094895209361127112, 0.0095073018063031572, 0.0095223132010203333, 0.0095347402033051625,
	0.0095447721588529776, 0.0095525971782307751, 0.0095583980863808201, 0.0095623496400415574,
	0.0095646167898721206, 0.0095653537615408117, 0.0095647037511522193, 0.0095627990620949978,
	0.0095597615443278709, 0.0095557032286307329, 0.0095507270753425813, 0.0095449277790459856,
	0.0095383925878363765, 0.0095312021088901633, 0.009523431081782845, 0.009515149108118303,
	0.0095064213311347699, 0.0094973090625530641, 0.0094878703564197225, 0.0094781605314299671,
	0.0094682326439088429, 0.0094581379156218805, 0.009447926118563859, 0.0094376459217393512,
	0.0094273452031763509, 0.0094170713310682413, 0.0094068714177144973, 0.0093967925497928928,
	0.0093868819983378687, 0.0093771874116387374, 0.0093677569941078669, 0.009358639674016225,
	0.0093498852628495204, 0.0093415446089066684, 0.0093336697476469471, 0.0093263140511881844,
	0.0093195323792817555, 0.009313381233930669, 0.0093079189200523781, 0.0093032057139541737,
	0.0092993040420650368, 0.0092962786717575938, 0.0092941969164275287, 0.0092931288566946366,
	0.0092931475798316374, 0.0092943294391968443, 0.0092967543358005913, 0.0093005060233300376,
	0.00930567243871642, 0.0093123460593875374, 0.0093206242884411577, 0.0093306098684671299,
	0.0093424113242118034, 0.009356143433538338, 0.0093719277251456366, 0.0093898930001982215,
	0.0094101758733018143, 0.009432921326032441, 0.0094582832633558923, 0.0094864250596116851,
	0.0095175200761007592, 0.009551752126493597, 0.0095893158590456221, 0.0096304170156903558,
	0.0096752725174681833, 0.0097241103124222992, 0.0097771689077516336, 0.0098346964903021118,
	0.0098969495212390193, 0.0099641906716778691, 0.010036685948962443, 0.010114700851880333,
	0.010198495393838297, 0.010288317856191749, 0.010384397195724268, 0.010486934155640715,
	0.010596091356480765, 0.010711983030015642, 0.010834665694184077, 0.010964132088778738,
	0.011100312322678118, 0.011243088799216861, 0.01139233575066765, 0.011548001339627981,
	0.011710262454471038, 0.011879802847592259, 0.012058295404969218, 0.01224918552160204,
	0.0124587125240364, 0.012696027060525665, 0.012966920443137324, 0.013245018534987657,
	-0.00071296320082858201, -0.00059419501110691796, -0.00039338831319167317, -0.00018719898532274426,
	7.137146933884607e-06, 0.00019142621371762164, 0.00036910821737672837, 0.00054177266080861013,
	0.00070948861170010971, 0.00087154123526083391, 0.001026938543662803, 0.0011746940345609173,
	0.0013139663136457129, 0.0014441157479501482, 0.0015647148359799504, 0.0016755340124244848,
	0.0017765157451290741, 0.0018677444871314569, 0.001949416803951448, 0.0020218139827625457,
	0.0020852781850311248, 0.0021401924529970522, 0.0021869644489322044, 0.002226013579818309,
	0.0022577610622637975, 0.0022826224619558323, 0.0023010022650664002, 0.0023132900842047807,
	0.0023198581553376392, 0.0023210598366485567, 0.0023172288714581341, 0.0023086792220994865,
	0.0022957053215557025, 0.0022785826212767583, 0.0022575683411836462, 0.0022329023494316864,
	0.0022048081170385476, 0.0021734937063519312, 0.0021391527632334617, 0.0021019654913232502,
	0.0020620995933023313, 0.0020197111690864402, 0.0019749455646847253, 0.0019279381683056278,
	0.0018788151524025826, 0.001827694161887308, 0.0017746849498343896, 0.0017198899627637822,
	0.0016634048780835404, 0.001605319096674768, 0.0015457161934985537, 0.0014846743297228303,
	0.0014222666292066399, 0.0013585615226507333, 0.0012936230623285829, 0.001227511210412432,
	0.0011602821035872038, 0.001091988296710742, 0.0010226789878978394, 0.0009524002276706826,
	0.00088119511420221462, 0.00080910397695635808, 0.00073616455071118833, 0.00066241214189571721,
	0.00058787978906139698, 0.00051259841920284254, 0.00043659700154797572, 0.00035990270033733711,
	0.00028254102801505152, 0.00020453600015370843, 0.00012591029332844329, 4.6685407038664016e-05,
	-3.3118169355911575e-05, -0.00011348078386889882, -0.00019438344258987785, -0.00027580762377514984,
	-0.00035773508447640594, -0.00044014766074664522, -0.00052302706151487026, -0.00060635465754656334,
	-0.00069011126741437057, -0.00077427694339342388, -0.00085883076145281518, -0.00094375062116327309,
	-0.0010290130634898987, -0.0011145931172492872, -0.0012004641886345176, -0.0012865980128514243,
	-0.0013729646927251231, -0.0014595328562379451, -0.0015462699732672314, -0.0016331428809010732,
	-0.0017201185755967533, -0.0018071653371781321, -0.001894254251001705, -0.0019813611857799588,
	-0.0020684692593958866, -0.0021555717770511342, -0.0022426755510419763, -0.0023298044097087751,
	-0.0024170025884545795, -0.0025043375897802942, -0.0025919020403194896, -0.0026798140944371057,
	-0.0027682160550047833, -0.0028572710868979348, -0.0029471581354790079, -0.0030380653596633759,
	-0.0031301824899002645, -0.0032236925125953297, -0.0033187630043855693, -0.0034155373682829481,
	-0.0035141262388307497, -0.0036145994796613818, -0.0037169795069069392, -0.0038212370983114492,
	-0.0039272912911092524, -0.0040350152482694912, -0.004144249796769992, -0.0042548253567493326,
	-0.0043665909134944876, -0.004479445657490401, -0.0045933657946789176, -0.0047084174368422762,
	-0.0048247481463208255, -0.004942555246291982, -0.0050620370213615533, -0.0051833402896586962,
	-0.0053065211120731951, -0.0054315326833746843, -0.0055582463158106946, -0.0056865007530196897,
	-0.0058161656957314411, -0.0059472006892753899, -0.0060796921260577114, -0.006213858574422749,
	-0.0063500251139508631, -0.0064885765350513099, -0.0066299036927938912, -0.0067743564710119357,
	-0.0069222129138514863, -0.007073669820528164, -0.0072288566822061332, -0.0073878715912021166,
	-0.007550833136733593, -0.0077179357414938381, -0.0078894896255994901, -0.0080659257266513761,
	-0.0082477550562494676, -0.0084354900953183438, -0.0086295546545408809, -0.0088302175095303203,
	-0.0090375792644606136, -0.0092516269787108838, -0.0094723578252145883, -0.0096999616413745784,
	-0.0099350167611486021, -0.010178539109668759, -0.010431498336054706, -0.010693582457734104,
	-0.010963792835350827, -0.011245544976927781, -0.011540214735839651, -0.011846687901602461,
	-0.012171118342998619, -0.01251899728411526, -0.012899001908932518, -0.013333751691352124,
	-0.01402456770609458, -0.014793168740578441, -0.017468848754965443, -0.017567805212595069,
	-0.017601747853341111, -0.017637777831927492, -0.017681813229959598, -0.017716473193042946,
	-0.017750678547122575, -0.017784765272642777, -0.017790146549124156, -0.017792491940817487,
	-0.017808738376221718, -0.017818009138037636, -0.017830244060571262, -0.017832022890717805,
	-0.017839981718003994, -0.017872633678567632, -0.017877826301695848, -0.017849838555399171,
	-0.017872910315271294, -0.017882130399366338, -0.017878397955532286, -0.017874718458092447,
	-0.017873694635230999, -0.017874705415152348, -0.017876856117969273, -0.01787936856729366,
	-0.01788159434252793, -0.017883050215607234, -0.01788343665759257, -0.017882619231111355,
	-0.017880588475522076, -0.017877415504368895, -0.01787321169305537, -0.017868094579458243,
	-0.017862160271712425, -0.017855463630395366, -0.017848010330285179, -0.017839769968360671,
	-0.017830724437688621, -0.017820961370425867, -0.017810798512957797, -0.01780089052766156,
	-0.017792257146055913, -0.017786202180013814, -0.017784145746880999, -0.017787426385520722,
	-0.017797129795946283, -0.017813980830056628, -0.017838311489450608, -0.017870096273960981,
	-0.017909031035609042, -0.017954626911395023, -0.018006296759624577, -0.018063422197635171,
	-0.018125398801867688, -0.01819166255832131, -0.018261702562747537, -0.01833506473894592,
	-0.01841135027374315, -0.018490211309538228, -0.018571345493336184, -0.018654490313210339,
	-0.018739417718331274, -0.018825929253166201, -0.018913851783385029, -0.019003033808377364,
	-0.019093342314789447, -0.01918466010912143, -0.019276883564199907, -0.019369920717769763,
	-0.019463689667791644, -0.019558117216594926, -0.019653137722351607, -0.019748692124386527,
	-0.01984472711291967, -0.019941194419790965, -0.020038050210422528, -0.020135254560744512,
	-0.020232771005627797, -0.020330566147679079, -0.020428609317158574, -0.020526872275338223,
	-0.020625328954898426, -0.020723955232014056, -0.020822728725644189, -0.020921628620255043,
	-0.02102063550879385, -0.021119731253220066, -0.021218898860308626, -0.021318122370774382,
	-0.02141738676005361, -0.021516677849313728, -0.02161598222546194, -0.021715287169093503,
	-0.021814580589460099, -0.021913850965663752, -0.022013087293380862, -0.022112279036512108,
	-0.022211416083227773, -0.022310488705943852, -0.022409487524819669, -0.022508403474416003,
	-0.022607227773196108, -0.022705951895585934, -0.022804567546343722, -0.022903066637015464,
	-0.023001441264278409, -0.023099683689994023, -0.02319778632281318, -0.02329574170118948,
	-0.023393542477675052, -0.023491181404382416, -0.023588651319509997, -0.023685945134837655,
	-0.023783055824107991, -0.023879976412204362, -0.02397669996514163, -0.024073219580579733,
	-0.024169528379125744, -0.024265619496114919, -0.02436148607393435, -0.024457121254825683,
	-0.024552518174128408, -0.024647669953927365, -0.024742569697072041, -0.024837210481537364,
	-0.024931585355098335, -0.025025687330292912, -0.025119509379650358, -0.025213044431162977,
	-0.025306285363981412, -0.025399225004315056, -0.025491856121521213, -0.025584171424365736,
	-0.025676163557441779, -0.025767825097732535, -0.025859148551304559, -0.025950126350121387,
	-0.026040750848963186, -0.026131014322445495, -0.026220908962124662, -0.026310426873681264,
	-0.026399560074173004, -0.02648830048934793, -0.026576639951010835, -0.026664570194434037,
	-0.026752082855806575, -0.026839169469713424, -0.026925821466639067, -0.027012030170487755,
	-0.027097786796114985, -0.027183082446864081, -0.027267908112100649, -0.027352254664740464,
	-0.027436112858764829, -0.027519473326716223, -0.027602326577170842, -0.027684662992181377,
	-0.027766472824684158, -0.027847746195867926, -0.027928473092494157, -0.028008643364168809,
	-0.028088246720557888, -0.028167272728540582, -0.028245710809297855, -0.028323550235328104,
	-0.028400780127388548, -0.028477389451347052, -0.028553367014980107, -0.02862870146461299,
	-0.028703381281736367, -0.028777394779483035, -0.028850730099002873, -0.028923375205733289,
	-0.028995317885559205, -0.029066545740838504, -0.029137046186317309, -0.029206806444911852,
	-0.029275813543360434, -0.029344054307736595, -0.029411515358824379, -0.029478183107348701,
	-0.029544043749060184, -0.029609083259668642, -0.029673287389622969, -0.029736641658736743,
	-0.029799131350653905, -0.029860741507155231, -0.029921456922301685, -0.029981262136415453,
	-0.030040141429895997, -0.030098078816871054, -0.030155058038683923, -0.030211062557215063,
	-0.030266075548041831, -0.030320079893435787, -0.030373058175201438, -0.030424992667358677,
	-0.030475865328672861, -0.03052565779503677, -0.030574351371710891, -0.030621927025426848,
	-0.03066836537636199, -0.030713646689993882, -0.030757750868845881, -0.030800657444116482,
	-0.030842345567249543, -0.030882794001399316, -0.030921981112847427, -0.030959884862371143,
	-0.030996482796582257, -0.031031752039256975, -0.031065669282675835, -0.031098210778997295,
	-0.031129352331689189, -0.031159069287044192, -0.031187336525808473, -0.031214128454954342,
	-0.031239418999629773, -0.03126318159532207, -0.031285389180272988, -0.031306014188187424,
	-0.031325028541280726, -0.031342403643711908, -0.031358110375453607, -0.031372119086655166,
	-0.031384399592554631, -0.031394921169005101, -0.031403652548680452, -0.031410561918030953,
	-0.031415616915066689, -0.031418784628046856, -0.031420031595162004, -0.031419323805300242,
	-0.031416626699993302, -0.031411905176645237, -0.031405123593153221, -0.03139624577403357,
	-0.031385235018176492, -0.031372054108357542, -0.031356665322640809, -0.031339030447818605,
	-0.031319110795037249, -0.031296867217768143, -0.031272260132291792, -0.031245249540869765,
	-0.031215795057787498, -0.031183855938462485, -0.031149391111816943, -0.031112359216126203,
	-0.031072718638561401, -0.031030427558653307, -0.030985443995913606, -0.030937725861858084,
	-0.030887231016681893, -0.030833917330848767, -0.030777742751858333, -0.030718665376463252,
	-0.030656643528614767, -0.030591635843415409, -0.030523601357361901, -0.030452499605163569,
	-0.030378290723415576, -0.030300935561407213, -0.030220395799336955, -0.030136634074195312,
	-0.030049614113566728, -0.02995930087758129, -0.029865660709225656, -0.029768661493198366,
	-0.029668272823456573, -0.02956446617956426, -0.029457215111904887, -0.029346495435760931,
	-0.029232285434200863, -0.02911456606963294, -0.02899332120379804, -0.028868537825868085,
	-0.028740206288198979, -0.028608320549146405, -0.028472878422202034, -0.028333881830519828,
	-0.028191337065706156, -0.028045255049509017, -0.027895651596777191, -0.02774254767775966,
	-0.027585969677468673, -0.027425949649439209, -0.027262525560769996, -0.027095741524816305,
	-0.026925648017321595, -0.026752302071100385, -0.026575767443608518, -0.026396114750844923,
	-0.026213421559991634, -0.02602777243199263, -0.025839258903874313, -0.025647979398960873,
	-0.025454039051215339, -0.025257549427665185, -0.025058628130186611, -0.024857398254746491,
	-0.024653987682426638, -0.024448528172059877, -0.024241154218956982, -0.024032001637806666,
	-0.023821205820184724, -0.023608899607966763, -0.023395210712973277, -0.023180258600025472,
	-0.022964150734757084, -0.022746978078361221, -0.022528809688070472, -0.02230968625318595,
	-0.022089612359771419, -0.021868547229103415, -0.021646393609464753, -0.021422984407126578,
	-0.021198066501802025, -0.020971280973190832, -0.020742138619140298, -0.020509989104222109,
	-0.020273981275598454, -0.020033011160705941, -0.019785653384299568, -0.01953007297280129,
	-0.019263922808307288, -0.018984259072874335, -0.018687571293029712, -0.018370116165957386,
	-0.018028663758638232, -0.01766098215932663, -0.017265904321240005, -0.016850276288469149,
	-0.01640809017535166, -0.015916814368669589, -0.015370006275144576, -0.014771628011141501,
	-0.014126288366112048, -0.013418375884067949, -0.012512155716800082, -0.010594703358651793,
	-1.2755983140116857e-08, -0.0086550065414360867, -0.011608555831013147, -0.013486407209535558,
	-0.015102911491669176, -0.016626682436533959, -0.018066199236131425, -0.019409676472490835,
	-0.020656172849558341, -0.021827834107045873, -0.022863269893672714, -0.023786031776280525,
	-0.024621497806811513, -0.025387502138362886, -0.026098625039223385, -0.026766278727927671,
	-0.027399147940333685, -0.028003933533877846, -0.028585898335765646, -0.02914921293875701,
	-0.029697189148839009, -0.030232453982757698, -0.030757087157534658, -0.031272731773875892,
	-0.031780683367029723, -0.032281961112826829, -0.032777364431262584, -0.033267517814150639,
	-0.033752906277626345, -0.034233903418579487, -0.034710793668155042, -0.035183790003453286,
	-0.035653048104817335, -0.036118677726602072, -0.036580751876505377, -0.037039314264054782,
	-0.037494385374928989, -0.037945967447836189, -0.038394048569272754, -0.038838606054373323,
	-0.039279609245877749, -0.039717021835430313, -0.040150803789985055, -0.040580912949530923,
	-0.041007306349507423, -0.041429941311268918, -0.041848776336138538, -0.042263771832417543,
	-0.042674890699833802, -0.043082098792013412, -0.04348536527441229, -0.043884662892594323,
	-0.044279968163648875, -0.044671261501799585, -0.045058527287810402, -0.045441753890560835,
	-0.045820933648116687, -0.046196062814721842, -0.046567141479350531, -0.046934173460776538,
	-0.047297166183514781, -0.047656130538458234, -0.04801108073155802, -0.048362034123481348,
	-0.048709011062798645, -0.049052034714923073, -0.04939113088872283, -0.049726327862458751,
	-0.050057656210463257, -0.050385148631759719, -0.050708839781633638, -0.051028766106995645,
	-0.051344965686228719, -0.051657478074074559, -0.051966344152002589, -0.052271605984395064,
	-0.052573306680797419, -0.052871490264399849, -0.053166201546848889, -0.053457486009429796,
	-0.053745389690608207, -0.054029959079876989, -0.054311241017817952, -0.054589282602257767,
	-0.054864131100371763, -0.055135833866570116, -0.055404438265982701, -0.055669991603349483,
	-0.055932541057110575, -0.056192133618486254, -0.056448816035331716, -0.056702634760550659,
	-0.05695363590484908, -0.057201865193615309, -0.057447367927712607, -0.057690188947974876,
	-0.057930372603201066, -0.058167962721448564, -0.058403002584432165, -0.058635534904841496,
	-0.058865601806395662, -0.059093244806462233, -0.059318504801073528, -0.05954142205218025,
	-0.059762036176990448, -0.059980386139248908, -0.060196510242317862, -0.060410446123927965,
	-0.060622230752475491, -0.060831900424747141, -0.061039490764961152, -0.061245036725019526,
	-0.061448572585871893, -0.061650131959897735, -0.061849747794218653, -0.062047452374858245,
	-0.062243277331672446, -0.062437253643976467, -0.062629411646801941, -0.062819781037719125,
	-0.063008390884165558, -0.063195269631225626, -0.063380445109808906, -0.063563944545179579,
	-0.063745794565791866, -0.063926021212390063, -0.064104649947334266, -0.064281705664116312,
	-0.064457212697032751, -0.064631194830983799, -0.064803675311370948, -0.064974676854065661,
	-0.065144221655426868, -0.065312331402343687, -0.065479027282283941, -0.065644329993329809,
	-0.065808259754183709, -0.065970836314127923, -0.06613207896292575, -0.066292006540648846,
	-0.066450637447425034, -0.066607989653082955, -0.066764080706701812, -0.066918927746044771,
	-0.067072547506872401, -0.067224956332130797, -0.067376170181006514, -0.067526204637844117,
	-0.067675074920921868, -0.067822795891081297, -0.067969382060207237, -0.068114847599556494,
	-0.068259206347931686, -0.068402471819699287, -0.068544657212650281, -0.068685775415701991,
	-0.068825839016441556, -0.068964860308509457, -0.069102851298824167, -0.069239823714647139,
	-0.069375789010490282, -0.069510758374864798, -0.069644742736873683, -0.069777752772649193,
	-0.069909798911634846, -0.070040891342716419, -0.070171040020200498, -0.070300254669644846,
	-0.070428544793540854, -0.07055591967685107, -0.070682388392403359, -0.070807959806144197,
	-0.070932642582252667, -0.071056445188118808, -0.071179375899187186, -0.071301442803668666,
	-0.071422653807125272, -0.071543016636919032, -0.071662538846551882, -0.071781227819869564,
	-0.071899090775152663, -0.072016134769088677, -0.072132366700629849, -0.072247793314738892,
	-0.072362421206023986, -0.072476256822267507, -0.072589306467848114, -0.072701576307061547,
	-0.072813072367339207, -0.07292380054236923, -0.073033766595121272, -0.073142976160776446,
	-0.07325143474956565, -0.073359147749517351, -0.073466120429117113, -0.073572357939880428,
	-0.073677865318840866, -0.073782647490955214, -0.073886709271426099, -0.073990055367945409,
	-0.074092690382858442, -0.074194618815249885, -0.074295845062954127, -0.074396373424489251,
	-0.074496208100916714, -0.074595353197627015, -0.074693812726051467, -0.07479159060530173,
	-0.074888690663735519, -0.074985116640450586, -0.075080872186705158, -0.075175960867265426,
	-0.075270386161678901, -0.075364151465473928, -0.075457260091282757, -0.075549715269888157,
	-0.075641520151191105, -0.075732677805098514, -0.075823191222327446, -0.075913063315124096,
	-0.076002296917894605, -0.076090894787742946, -0.07617885960491344, -0.07626619397313171,
	-0.076352900419841011, -0.076438981396325101, -0.076524439277714559, -0.076609276362866213,
	-0.07669349487411134, -0.07677709695685335, -0.076860084679024984, -0.076942460030369642,
	-0.077024224921549964, -0.07710538118306437, -0.077185930563955632, -0.077265874730294115,
	-0.077345215263415548, -0.077423953657891578, -0.077502091319207669, -0.07757962956112098,
	-0.077656569602666009, -0.077732912564775089, -0.077808659466471364, -0.0778838112205925,
	-0.077958368628993704, -0.078032332377173719, -0.078105703028260753, -0.07817848101628469,
	-0.078250666638654764, -0.078322260047747685, -0.078393261241500936, -0.078463670052888665,
	-0.078533486138139513, -0.078602708963537757, -0.078671337790620813, -0.078739371659560145,
	-0.078806809370477585, -0.078873649462409101, -0.078939890189579934, -0.079005529494597493,
	-0.079070564978101235, -0.079134993864325626, -0.079198812961931889, -0.079262018619347785,
	-0.079324606673703321, -0.079386572392278795, -0.079447910405157682, -0.079508614627515212,
	-0.079568678169642693, -0.079628093232401359, -0.079686850985302121, -0.0797449414237862,
	-0.079802353201511286, -0.079859073432503369, -0.079915087456841727, -0.079970378562166156,
	-0.08002492765135634, -0.080078712844846911, -0.080131709003267548, -0.080183887153286448,
	-0.080235213796256949, -0.080285650075995987, -0.080335150779294526, -0.080383663141724779,
	-0.080431125434097847, -0.080477465315273805, -0.08052259796124997, -0.080566424028618897,
	-0.080608827597514518, -0.080649674384584466, -0.080688810739861977, -0.080726064247408996,
	-0.080761247095361574, -0.080794163622640053, -0.080824623295026862, -0.080852459419301165,
	-0.080877551949759624, -0.08089985021158172, -0.080919389566835476, -0.080936296396127205,
	-0.080950778387802513, -0.080963100722503567, -0.080973552262254667, -0.080982409025647684,
	-0.080989903744661043, -0.080996207990013377, -0.081001427921959232, -0.081005610355461208,
	-0.081008755048599335, -0.081010830085234742, -0.081011787536580657, -0.081011576526098417,
	-0.08101015161631242, -0.081007475986980312, -0.08100352017183983, -0.080998257651590994,
	-0.080991658724027527, -0.08098368431538587, -0.080974281125340081, -0.080963375345047092,
	-0.080950851053622791, -0.080936507720042933, -0.0809201542587831, -0.080902536938774791,
	-0.08088784243709711, -0.080879869234103369, -0.080864090999054825, -0.080850135664783537,
	-0.080837512432028261, -0.080819031057840232, -0.080800413358880982, -0.080778187571043672,
	-0.08074895905975997, -0.080717947761072953, -0.080682366360484689, -0.080640949222246433,
	-0.080598265236891328, -0.080548060754451131, -0.080486485864943058, -0.080409971410756065,
	-0.08034178944710435, -0.080251326903846953, -0.08009569098025672, -0.080568105568751533,
	-0.080806459755848173, -0.081011790216821589, -0.081140085464358039, -0.081250875713107892,
	-0.081350049898962051, -0.081443301846064547, -0.081529535102324593, -0.081610649682061415,
	-0.081689080960094182, -0.08176485847879035, -0.081837325434116689, -0.081906276823624391,
	-0.081971869991187024, -0.082034386193818712, -0.082094120987308561, -0.082151345747133411,
	-0.082206294755117704, -0.08225916037106687, -0.082310091686551679, -0.082359196041667235,
	-0.082406543575529956, -0.08245217472543219, -0.082496109825328373, -0.082538359246940585,
	-0.082578932352413967, -0.082617843959365597, -0.082655117850222795, -0.08269078776487486,
	-0.082724896922567473, -0.082757497191820781, -0.082788648660729353, -0.082818419855536077,
	-0.08284688844359285, -0.082874141978900917, -0.082900278043409159, -0.082925402997374248,
	-0.082949628607079412, -0.082973066244446309, -0.082995819142343594, -0.083017974022757068,
	-0.083039593851220145, -0.083060713285403695, -0.083081337700125199, -0.083101445798882179,
	-0.083120995060316893, -0.083139928798623267, -0.0831581834949153, -0.083175695233673047,
	-0.0831924044547174, -0.083208258704955324, -0.083223213544554295, -0.083237232114123497,
	-0.083250284008612022, -0.083262344021930015, -0.083273391111432768, -0.083283407703296258,
	-0.083292379300924174, -0.083300294291193233, -0.083307143847765872, -0.083312921872310028,
	-0.083317624961799258, -0.083321252421694178, -0.083323806350559151, -0.083325291802112109,
	-0.083325716995688734, -0.083325093511393097, -0.083323436387769401, -0.083320764047318613,
	-0.083317098007512108, -0.08331246238092864, -0.083306883211881649, -0.083300387725139979,
	-0.08329300356939115, -0.083284758126584049, -0.083275677935544287, -0.083265788253125236,
	-0.083255112754445776, -0.083243673358782522, -0.083231490159565616, -0.083218581434380684,
	-0.08320496371205785, -0.083190651877113969, -0.083175659295744137, -0.083159997951428449,
	-0.083143678581615824, -0.083126710809716328, -0.083109103268763529, -0.083090863714689905,
	-0.083071999128272692, -0.083052515805576363, -0.083032419437213817, -0.083011715177055717,
	-0.082990407701188998, -0.082968501258002578, -0.082945999710292428, -0.082922906570256319,
	-0.082899225028200213, -0.082874957975704558, -0.082850108023952013, -0.082824677517820577,
	-0.082798668546293863, -0.082772082949663123, -0.082744922323935821, -0.082717188022804131,
	-0.082688881157469737, -0.082660002594571819, -0.082630552952416864, -0.082600532595664564,
	-0.082569941628581903, -0.082538779886944413, -0.082507046928621666, -0.082474742022855915,
	-0.082441864138208434, -0.082408411929122571, -0.082374383721011885, -0.082339777493775509,
	-0.082304590863591293, -0.082268821062830011, -0.082232464917895626, -0.082195518824781197,
	-0.082157978722097763, -0.082119840061314384, -0.082081097773913758, -0.082041746235174864,
	-0.082001779224235544, -0.081961189880107338, -0.081919970653288723, -0.081878113252628809,
	-0.081835608587101566, -0.081792446702179847, -0.081748616710546382, -0.081704106716961558,
	-0.081658903737222913, -0.081612993611333465, -0.081566360911240587, -0.081518988843855583,
	-0.08147085915054153, -0.081421952004902307, -0.081372245911572549, -0.081321717609876748,
	-0.081270341987741163, -0.081218092013304738, -0.081164938694269884, -0.081110851078522464,
	-0.081055796313976761, -0.080999739791321065, -0.080942645400629773, -0.08088447594202855,
	-0.080825193742183735, -0.080764761542812882, -0.080703143745249978, -0.080640308117018777,
	-0.08057622809329576, -0.080510885839511895, -0.080444276283799243, -0.080376412384906309,
	-0.080307331983985875, -0.080237106721636323, -0.080165853736192172, -0.080093751301621649,
	-0.080021060422177187, -0.079948156041485766, -0.079875574369849323, -0.079804086236212615,
	-0.079734802602879254, -0.079669269447519495, -0.079609293447342605, -0.07955560857722134,
	-0.0795026245116916, -0.07944078559907522, -0.079369392040895673, -0.079296733317199428,
	-0.079225466669091305, -0.079155958583459932, -0.079087845100016055, -0.079020596148997438,
	-0.078953699631644725, -0.07888671278920148, -0.078819271273325969, -0.078751085122149123,
	-0.078681930692970775, -0.078611641502865467, -0.078540099103343766, -0.078467224515595208,
	-0.078392970499462575, -0.078317314783930392, -0.078240254288888311, -0.078161800301388695,
	-0.078081974527963421, -0.078000805922439298, -0.077918328180928906, -0.077834577797608648,
	-0.077749592582768631, -0.07766341055557674, -0.077576069136076273, -0.077487604572871002,
	-0.077398051554001951, -0.077307442958325923, -0.07721580971312382, -0.077123180730789248,
	-0.077029582903227908, -0.07693504113742658, -0.076839578419424001, -0.07674321589697139,
	-0.076645972973568732, -0.076547867408434236, -0.076448915418420638, -0.076349131779015866,
	-0.076248529922422301, -0.076147122031360745, -0.076044919127737642, -0.075941931155678072,
	-0.075838167058697864, -0.075733634850981543, -0.075628341682874425, -0.075522293900791959,
	-0.075415497101813389, -0.075307956183261762, -0.075199675387613851, -0.075090658343052744,
	-0.074980908100020935, -0.074870427164088066, -0.074759217525455057, -0.074647280685383219,
	-0.07453461767983581, -0.074421229100579453, -0.074307115113993211, -0.074192275477778902,
	-0.074076709555777845, -0.073960416331048065, -0.073843394417343541, -0.073725642069108435,
	-0.073607157190073713, -0.073487937340515938, -0.073367979743211742, -0.073247281288091076,
	-0.073125838535565285, -0.073003647718472398, -0.072880704742556604, -0.072757005185362517,
	-0.072632544293396453, -0.072507316977379277, -0.072381317805377279, -0.072254540993620914,
	-0.072126980394691911, -0.071998629482920337, -0.071869481336694491, -0.071739528617501089,
	-0.07160876354555222, -0.071477177871969305, -0.071344762847655202, -0.071211509189237451,
	-0.071077407042804991, -0.070942445946639801, -0.070806614794773612, -0.070669901804023535,
	-0.070532294488181116, -0.070393779644264173, -0.070254343357132515, -0.070113971030215522,
	-0.069972647451381015, -0.069830356903725646, -0.069687083330748911, -0.069542810563288551,
	-0.069397522610992343, -0.069251204013424564, -0.069103840235261282, -0.068955418077551983,
	-0.068805926065827777, -0.068655354769897148, -0.068503697014583934, -0.068350947958106617,
	-0.068197105043798362, -0.068042167863920019, -0.067886137999419255, -0.067729018904678875,
	-0.067570815885441143, -0.06741153617454497, -0.067251189055976726, -0.067089785939044036,
	-0.066927340255344733, -0.066763867050054049, -0.066599382168313154, -0.066433900995742604,
	-0.066267436796109233, -0.066099998793595516, -0.06593159026043488, -0.065762206969162879,
	-0.065591836413901011, -0.065420458153376479, -0.065248045455236922, -0.065074568145123537,
	-0.06489999624543033, -0.064724303704263589, -0.064547471342350032, -0.064369488171535469,
	-0.064190350538275695, -0.064010059099446653, -0.063828614268035044, -0.063646011199482738,
	-0.063462235427359487, -0.063277259917436351, -0.063091043813332623, -0.062903532745053947,
	-0.062714660353312676, -0.062524350563731956, -0.062332520040362036, -0.062139080198260983,
	-0.061943938261056916, -0.061746997136907567, -0.061548154275807225, -0.061347300043544405,
	-0.061144316395422421, -0.060939076668597339, -0.0607314470774774, -0.060521289986008177,
	-0.060308468303746567, -0.060092849585016178, -0.059874307989058351, -0.059652722658409811,
	-0.059427972348125184, -0.059199927579965207, -0.058968442241365195, -0.058733346489900667,
	-0.058494444616330576, -0.058251529246467301, -0.058004428877205402, -0.05775304206209797,
	-0.057497085222054614, -0.057235619688040459, -0.056967910163048294, -0.056693770466375047,
	-0.056412253960732628, -0.056118696005709463, -0.055812023710041229, -0.055481338508783888,
	-0.055043190041889581, -0.054567119362733528, -0.053651259845356403, -0.053651078663049807,
	-0.053586299636772909, -0.053491685160450921, -0.053403489022254537, -0.053303356858701988,
	-0.053188801676226284, -0.053064949926874834, -0.052946727066615511, -0.052828720882135173,
	-0.052698274434731983, -0.052559747967443796, -0.052416093571364189, -0.052277803389973461,
	-0.052130211733645578, -0.051967599837171058, -0.05181913169427415, -0.051692265998117319,
	-0.051548342638557149, -0.051403278130856336, -0.051258717159642656, -0.051112183353266512,
	-0.050963644558295065, -0.050813551672721488, -0.050662221708689732, -0.0505098690421917,
	-0.050356646036662407, -0.05020264278568147, -0.0500478882174051, -0.049892362842490767,
	-0.049736016890166775, -0.049578788091241797, -0.049420617492305308, -0.04926146410829732,
	-0.049101319261156295, -0.048940219671249202, -0.048778255352731732, -0.048615564894930519,
	-0.04845230911196783, -0.048288618798793703, -0.048124526041448103, -0.047959904525177718,
	-0.047794447856092999, -0.047627698882438445, -0.047459118803631545, -0.047288170619870867,
	-0.047114392855099829, -0.046937448909778405, -0.046757147051597121, -0.046573433800836714,
	-0.046386368972242693, -0.046196092727446278, -0.046002793401831311, -0.0458066812463475,
	-0.045607969706931803, -0.045406863609685398, -0.045203552677688517, -0.044998208715422705,
	-0.044790985090787196, -0.044582017526982286, -0.04437142555217783, -0.044159314205402839,
	-0.043945775767477033, -0.043730891394554432, -0.043514732597836267, -0.043297362551114889,
	-0.043078837228547599, -0.042859206385368269, -0.042638514398517076, -0.042416800985099049,
	-0.042194101815794229, -0.041970449038609595, -0.04174587172688024, -0.041520396262816145,
	-0.041294046666923739, -0.041066844881565687, -0.04083881101576551, -0.040609963557184624,
	-0.040380319556235514, -0.040149894786487332, -0.039918703884844225, -0.039686760474418485,
	-0.039454077272555885, -0.039220666186082616, -0.038986538395522567, -0.038751704429768323,
	-0.038516174232462459, -0.038279957221163542, -0.038043062340211764, -0.037805498108080093,
	-0.037567272659886172, -0.037328393785646265, -0.037088868964772967, -0.036848705397255731,
	-0.036607910031898928, -0.03636648959195081, -0.036124450598409921, -0.035881799391261987,
	-0.035638542148869565, -0.035394684905708615, -0.035150233568625518, -0.034905193931764451,
	-0.034659571690303058, -0.034413372453112594, -0.034166601754452332, -0.033919265064789754,
	-0.033671367800834316, -0.033422915334857813, -0.033173913003371754, -0.0329243661152199,
	-0.032674279959143238, -0.032423659810865181, -0.032172510939741848, -0.031920838615017766,
	-0.03166864811172275, -0.031415944716253294, -0.031162733731610291, -0.030909020482468238,
	-0.030654810319894858, -0.030400108625905878, -0.030144920817807806, -0.029889252352357745,
	-0.029633108729759047, -0.02937649549750803, -0.029119418254106223, -0.028861882652651504,
	-0.028603894404320322, -0.028345459281751962, -0.028086583122346971, -0.027827271831486523,
	-0.027567531385684341, -0.027307367835678518, -0.027046787309470514, -0.026785796015319392,
	-0.02652440024469787, -0.026262606375216119, -0.026000420873519333, -0.025737850298166422,
	-0.025474901302491332, -0.025211580637456248, -0.024947895154498731, -0.024683851808378211,
	-0.024419457660026376, -0.02415471987940469, -0.023889645748374422, -0.023624242663581981,
	-0.02335851813936329, -0.023092479810671286, -0.022826135436030352, -0.022559492900519205,
	-0.022292560218788327, -0.022025345538113705, -0.021757857141488389, -0.021490103450759603,
	-0.021222093029809951, -0.020953834587788316, -0.020685336982392763, -0.02041660922320887,
	-0.020147660475105765, -0.019878500061695881, -0.019609137468855026, -0.019339582348313539,
	-0.019069844521318196, -0.018799933982363844, -0.018529860903007858, -0.018259635635758865,
	-0.017989268718053716, -0.017718770876321208, -0.017448153030112826, -0.017177426296381332,
	-0.016906601993793093, -0.016635691647178152, -0.016364706992063664, -0.016093659979324784,
	-0.015822562779952865, -0.015551427789907936, -0.01528026763511129, -0.015009095176548748,
	-0.014737923515499764, -0.014466765998887375, -0.014195636224760375, -0.013924548047905877,
	-0.013653515585600354, -0.013382553223495519, -0.013111675621646298, -0.012840897720684995,
	-0.012570234748139899, -0.012299702224905562, -0.012029315971863196, -0.01175909211665783,
	-0.011489047100630315, -0.011219197685907602, -0.010949560962655041, -0.01068015435648767,
	-0.010410995636046165, -0.010142102920734046, -0.0098734946886201574, -0.0096051897845033634,
	-0.0093372074281404208, -0.0090695672226354437, -0.0088022891629901869, -0.0085353936448114131,
	-0.0082689014731732024, -0.0080028338716308968, -0.0077372124913781138, -0.0074720594205629643,
	-0.0072073971937065603, -0.0069432488012801672, -0.0066796376993887747, -0.0064165878195669521,
	-0.006154123578674277, -0.0058922698888789976, -0.0056310521677152246, -0.0053704963481990189,
	-0.0051106288889867825, -0.0048514767845565868, -0.0045930675753931083, -0.0043354293581518962,
	-0.0040785907957787398, -0.0038225811275580585, -0.0035674301790572216, -0.0033131683719378317,
	-0.0030598267335957417, -0.0028074369065918619, -0.0025560311578315571, -0.0023056423874472272,
	-0.0020563041373342279, -0.001808050599285534, -0.0015609166226695404, -0.001314937721585326,
	-0.0010701500814302518, -0.00082659056480572529, -0.00058429671668278852, -0.00034330676874416954,
	-0.00010365964281061387, 0.00013460504674509463, 0.0003714469916998822, 0.00060682518991192621,
	0.00084069794660022947, 0.0010730228771003777, 0.0013037569112355376, 0.0015328562994460233,
	0.0017602766208369227, 0.0019859727933078863, 0.0022098990859442595, 0.0024320091338577389,
	0.0026522559556777054, 0.0028705919739065388, 0.0030869690383655652, 0.0033013384529722279,
	0.0035136510061011803, 0.0037238570048011206, 0.0039319063131480697, 0.0041377483950378845,
	0.0043413323617321302, 0.0045426070244901327, 0.0047415209526359406, 0.004938022537427319,
	0.0051320600621075525, 0.005323581778542274, 0.0055125359908570794, 0.0056988711465092243,
	0.0058825359352438055, 0.0060634793963967367, 0.006241651035025891, 0.0064170009473585284,
	0.0065894799560581238, 0.0067590397558204042, 0.0069256330698137941, 0.0070892138174807372,
	0.0072497372942152537, 0.0074071603634238365, 0.0075614416614615525, 0.0077125418159167351,
	0.0078604236776842456, 0.0080050525672298953, 0.0081463965353934624, 0.0082844266390116605,
	0.0084191172315586996, 0.0085504462688956832, 0.0086783956300951117, 0.0088029514531483364,
	0.00892410448517892, 0.0090418504465555154, 0.0091561904080302084, 0.0092671311797018589,
	0.0093746857102202062, 0.0094788734941862792, 0.0095797209851618929, 0.0096772620110522223,
	0.0097715381878620746, 0.0098625993269170435, 0.0099505038295683301, 0.010035319062127327,
	0.01011712170227189, 0.010195998046383801, 0.010272044265171514, 0.010345366592437257,
	0.010416081428896901, 0.010484315339472586, 0.010550204918347423, 0.010613896491192319,
	0.010675545618202876, 0.010735316354761945, 0.010793380218482907, 0.010849914801857945,
	0.01090510195845841, 0.010959125477279112, 0.011012168143940522, 0.0110644080684991,
	0.011116014136778853, 0.011167140414270868, 0.011217919297040038, 0.011268453159964567,
	0.011318804194616174, 0.011368982049829938, 0.011418928775417099, 0.011468500403542052,
	0.011517444250675723, 0.011565370635182941, 0.011611717107957381, 0.011655702393074608,
	0.01169626595465165, 0.011731987505054093, 0.011760979381001006, 0.011780745327450555,
	0.011788006414741975, 0.01177851784201717, 0.011746950961116019, 0.01168697924430955,
	0.011591646586057314, 0.011453693060171058, 0.011266283021319306, 0.011028133042789236,
	0.01076155431120104, 0.010489373646674139, 0.010209241172302642, 0.0099388560084156651,
	0.0097024389745494315, 0.0094977149486759702, 0.0091662476341931778, 0.0077260473561959753,
	1.2755983140116858e-08, 0.01151570679193189, 0.014951319791203311, 0.017448029701355301,
	0.019607750531524783, 0.021577509508971495, 0.023375349101913079, 0.025005599793462112,
	0.02647632826470166, 0.027783255244325115, 0.028964424392849637, 0.030074243414830289,
	0.031121741641322635, 0.032117845055336595, 0.033071999308498433, 0.033991789867062687,
	0.034883214192268967, 0.035751120897536133, 0.036599493484281161, 0.037431614375373151,
	0.038250178016262223, 0.039057384968261617, 0.03985502562165423, 0.040644554063206474,
	0.041427151370464474, 0.042203778313367281, 0.042975218268793025, 0.043742111630325965,
	0.044504983139226753, 0.045264263495868561, 0.046020306442070141, 0.04677340230415717,
	0.047523788792409115, 0.048271659682012628, 0.049017171858976569, 0.049760451100852955,
	0.050501596873120995, 0.051240686353537505, 0.051977777844591198, 0.052712913694857796,
	0.05344612282058861, 0.054177422896938457, 0.054906822271965694, 0.055634321644521631,
	0.056359915538280632, 0.057083593597612968, 0.05780534172618973, 0.058525143085618389,
	0.059242978968738633, 0.05995882956019636, 0.060672674595361097, 0.061384493927443842,
	0.062094268011708059, 0.062801978314857079, 0.063507607657011078, 0.06421114049309104,
	0.064912563139895005, 0.065611863954675956, 0.066309033470578996, 0.06700406449387615,
	0.067696952167550034, 0.068387694005398694, 0.069076289900482798, 0.069762742111409454,
	0.070447055229621872, 0.071129236130577964, 0.071809293911417396, 0.07248723981745496,
	0.073163087159601611, 0.073836851224582542, 0.074508549179616385, 0.075178199973026008,
	0.075845824232076434, 0.076511444159167816, 0.077175083427372976, 0.077836767076163688,
	0.078496521408058392, 0.079154373886808391, 0.079810353037639684, 0.080464488349986249,
	0.081116810183064728, 0.081767349674571763, 0.082416138652728038, 0.08306320955183201,
	0.083708595331440941, 0.084352329399258422, 0.084994445537763572, 0.085634977834595213,
	0.086273960616669726, 0.08691142838799161, 0.087547415771098744, 0.088181957452065696,
	0.088815088128973152, 0.089446842463749079, 0.090077255037270001, 0.090706360307608633,
	0.091334192571311437, 0.091960785927581279, 0.092586174245242459, 0.093210391132366066,
	0.09383346990842599, 0.094455443578867579, 0.095076344811965169, 0.095696205917846902,
	0.096315058829575001, 0.096932935086163713, 0.097549865817425599, 0.098165881730541527,
	0.09878101309824848, 0.099395289748548235, 0.10000874105584209, 0.10062139593339831,
	0.1012332828270668, 0.10184442971015993, 0.10245486407941508, 0.10306461295196845,
	0.1036737028632677, 0.10428215986585219, 0.10489000952894185, 0.10549727693876895,
	0.106103986699598, 0.10671016293538044, 0.1073158292919891, 0.10792100893998742,
	0.10852572457788873, 0.10912999843585819, 0.10973385227982377, 0.11033730741595352,
	0.11094038469546615, 0.11154310451974074, 0.11214548684569758, 0.11274755119141566,
	0.11334931664196586, 0.11395080185543016, 0.11455202506908484, 0.11515300410572743,
	0.11575375638012254, 0.11635429890555204, 0.11695464830044995, 0.11755482079510586,
	0.11815483223841604, 0.11875469810468649, 0.11935443350044493, 0.11995405317128041,
	0.12055357150867634, 0.12115300255684056, 0.12175236001951466, 0.12235165726675944,
	0.12295090734170498, 0.12355012296725955, 0.12414931655276694, 0.12474850020061508,
	0.12534768571277891, 0.12594688459729997, 0.12654610807469674, 0.12714536708429919,
	0.12774467229050765, 0.12834403408896586, 0.12894346261265732, 0.12954296773790572,
	0.13014255909029604, 0.13074224605049306, 0.13134203775997899, 0.1319419431266905,
	0.13254197083055308, 0.13314212932893846, 0.1337424268620043, 0.13434287145795121,
	0.1349434709381658, 0.13554423292228104, 0.13614516483312813, 0.13674627390162419,
	0.13734756717146693, 0.13794905150384065, 0.1385507335819921, 0.13915261991566891,
	0.13975471684550525, 0.14035703054729898, 0.14095956703619139, 0.14156233217076575,
	0.14216533165703571, 0.14276857105236374, 0.14337205576927084, 0.14397579107917582,
	0.1445797821160304, 0.14518403387988307, 0.14578855124035384, 0.14639333894002157,
	0.14699840159773786, 0.14760374371185783, 0.14820936966339529, 0.14881528371909802,
	0.14942149003445171, 0.15002799265661049, 0.15063479552725728, 0.15124190248539143,
	0.15184931727005405, 0.15245704352298306, 0.15306508479120806, 0.15367344452957957,
	0.15428212610324138, 0.15489113279004502, 0.15550046778290322, 0.15611013419209568,
	0.15672013504751894, 0.15733047330088493, 0.15794115182787485, 0.15855217343024555,
	0.15916354083789194, 0.15977525671086706, 0.16038732364136477, 0.16099974415566387,
	0.16161252071603963, 0.16222565572264058, 0.1628391515153369, 0.16345301037554502,
	0.16406723452802224, 0.16468182614264493, 0.16529678733616776, 0.16591212017396587,
	0.16652782667176835, 0.16714390879738064, 0.16776036847240494, 0.16837720757395988,
	0.16899442793640193, 0.16961203135305755, 0.17023001957796827, 0.17084839432765159,
	0.17146715728288764, 0.17208631009053951, 0.17270585436540112, 0.17332579169209661,
	0.17394612362702755, 0.17456685170038094, 0.17518797741820683, 0.17580950226457276,
	0.17643142770381104, 0.17705375518286851, 0.17767648613377038, 0.17829962197621815,
	0.17892316412033388, 0.1795471139695706, 0.18017147292381219, 0.1807962423826811,
	0.18142142374908238, 0.18204701843301518, 0.18267302785567785, 0.18329945345391027,
	0.18392629668500973, 0.18455355903196952, 0.18518124200919098, 0.18580934716873224,
	0.18643787610715873, 0.18706683047307496, 0.18769621197542749, 0.18832602239268093,
	0.1889562635829839, 0.18958693749546413, 0.19021804618280544, 0.19084959181529615,
	0.19148157669655474, 0.19211400328118641, 0.19274687419466183, 0.19338019225575842,
	0.19401396050197248, 0.19464818221837785, 0.19528286097050482, 0.19591800064191536,
	0.19655360547728723, 0.19718968013198454, 0.19782622972928587, 0.19846325992668837,
	0.19910077699299925, 0.19973878789829505, 0.20037730041926688, 0.20101632326298477,
	0.20165586621282247, 0.20229594030093359, 0.20293655801264027, 0.20357773352900585,
	0.20421948301487433, 0.2048618249605394, 0.20550478058570187, 0.2061483743139689,
	0.20679263432393868, 0.20743759317736898, 0.20808328851355426, 0.20872976377798852,
	0.20937706891724403, 0.21002526091405768, 0.21067440395118561, 0.21132456888100873,
	0.21197583156096042, 0.21262826955138034, 0.21328195677161735, 0.21393695610573193,
	0.21459331069265461, 0.21525103553629463, 0.215910111667141, 0.21657048496130493,
	0.21723207092423916, 0.2178947656252245, 0.21855846152300357, 0.21922306498702904,
	0.2198885107416044, 0.22055476897037157, 0.22122184379290538, 0.22188976522101672,
	0.22255857824668332, 0.22322833220608101, 0.22389907225622743, 0.22457083362712998,
	0.22524363849551998, 0.22591749489264992, 0.22659239702886491, 0.22726832666824007,
	0.22794525543167116, 0.22862314790916999, 0.22930196547897044, 0.22998167229931274,
	0.23066225072498117, 0.23134373779113779, 0.23202624961768761, 0.23270976450247036,
	0.23339332505725127, 0.23407586907719119, 0.2347604382397131, 0.23544153226281264,
	0.23612101364500596, 0.23680456233501307, 0.23749016625265271, 0.23817681541282515,
	0.23886769202884903, 0.23956277358615641, 0.24026198595872594, 0.24096404964785004,
	0.24166851511401946, 0.24237909047862988, 0.24309893766343837, 0.24382969333278465,
	0.24455318104934634, 0.24529198310792066, 0.24608321009597961, 0.24664980038650394,
	0.2472208121553057, 0.24780423502362256, 0.24842005964680894, 0.24904281156727021,
	0.24966975226601365, 0.25029940948492052, 0.25093160629135086, 0.25156614799028049,
	0.25220181367346822, 0.25283858861662478, 0.25347698972617494, 0.25411690087348959,
	0.25475819391666532, 0.25540084663612711, 0.25604482287109037, 0.25669003232520099,
	0.25733634738887795, 0.25798363419358827, 0.25863177945834892, 0.25928070712166007,
	0.25993038321885081, 0.26058080949304713, 0.26123200858814094, 0.26188400603236478,
	0.26253681497288051, 0.26319042800613535, 0.2638448172475682, 0.26449994068098309,
	0.26515575123745527, 0.26581220525052668, 0.26646926814638855, 0.26712691649162917,
	0.26778513637357415, 0.26844391862177358, 0.26910325190612289, 0.26976311542660325,
	0.27042347351467794, 0.2710842744583421, 0.2717454548349964, 0.27240694879343191,
	0.27306869986685511, 0.27373067187252687, 0.27439285565398847, 0.27505526970502664,
	0.27571795458823967, 0.2763809628895918, 0.27704434763859132, 0.27770815230950052,
	0.27837240470590496, 0.27903711558774424, 0.27970228141212361, 0.28036788957347808,
	0.28103392429791169, 0.28170037174720886, 0.28236722357034866, 0.28303447876975607,
	0.28370214415164396, 0.28437023378923659, 0.28503876791307858, 0.28570777153836618,
	0.28637727301195076, 0.28704730255408512, 0.28771789080473958, 0.28838906736797149,
	0.28906085937276149, 0.28973329011527466, 0.29040637788953788, 0.29108013512787728,
	0.29175456794835281, 0.29242967615006843, 0.29310545362790302, 0.29378188911848485,
	0.29445896715500847, 0.2951366691036541, 0.29581497417362002, 0.29649386032402464,
	0.29717330502478317, 0.29785328585701559, 0.29853378095886896, 0.29921476933465185,
	0.29989623105050484, 0.30057814734055321, 0.30126050064550985, 0.30194327460245274,
	0.3026264540009288, 0.30331002471716262, 0.30399397363523262, 0.30467828856168538,
	0.30536295813817754, 0.30604797175529586, 0.30673331946962801, 0.30741899192537159,
	0.30810498028119593, 0.30879127614268159, 0.30947787150037304, 0.31016475867329701,
	0.31085193025771668, 0.31153937908067503, 0.31222709815809968, 0.31291508065692925,
	0.31360331986091683, 0.3142918091396939, 0.31498054192070118, 0.31566951166361412,
	0.31635871183690084, 0.31704813589617487, 0.31773777726402019, 0.31842762931098223,
	0.3191176853374334, 0.31980793855604223, 0.32049838207457598, 0.32118900887878937,
	0.32187981181515046, 0.32257078357317814, 0.32326191666713411, 0.32395320341688305,
	0.32464463592765908, 0.32533620606854141, 0.32602790544940718, 0.32671972539615118,
	0.32741165692395158, 0.32810369070837281, 0.32879581705407501, 0.32948802586096987,
	0.33018030658758657, 0.33087264821150358, 0.33156503918668845, 0.33225746739763917,
	0.3329499201102713, 0.3336423839195638, 0.33433484469407804, 0.33502728751759453,
	0.33571969662828249, 0.33641205535604018, 0.3371043460589393, 0.33779655006007742,
	0.33848864758660929, 0.3391806177133343, 0.33987243831394748, 0.34056408602398403,
	0.34125553622057209, 0.34194676302548499, 0.34263773933944924, 0.34332843691748682,
	0.34401882649692944, 0.34470887799167749, 0.34539856076796538, 0.34608784401796472,
	0.34677669724726207, 0.34746509088951039, 0.34815299705457742, 0.3488403904025843,
	0.34952724911119054, 0.35021355586093733, 0.35089929869368575, 0.35158447148684691,
	0.35226907360652515, 0.35295310801422869, 0.35363657663080522, 0.35431947097378053,
	0.35500175474175333, 0.35568333276717695, 0.35636399749459646, 0.35704334257573184,
	0.35772065144151016, 0.35839488886317744, 0.35906540298374556, 0.35973513430401544,
	0.360877949668299, 0.36160196441680381, 0.36233324003371248, 0.36306373120783103,
	0.36379189293843456, 0.3645181520638357, 0.36524313038074885, 0.36596726381940847,
	0.36669081105325257, 0.36741391637717691, 0.36813665777025306, 0.3688590765706507,
	0.36958119477184304, 0.37030302488387606, 0.37102457543135109, 0.37174585389581555,
	0.37246686816717484, 0.37318762713888431, 0.37390814082854823, 0.37462842025299409,
	0.37534847719340836, 0.37606832392840339, 0.37678797297737998, 0.377507436874993,
	0.3782267279847758, 0.37894585835274464, 0.37966483959799568, 0.38038368283555402,
	0.3811023986262167, 0.38182099694825833, 0.38253948718636732, 0.38325787813377055,
	0.38397617800420419, 0.384694394450946, 0.38541253459070324, 0.38613060503061258,
	0.38684861189699871, 0.38756656086486341, 0.38828445718734128, 0.38900230572456151,
	0.38972011097152187, 0.39043787708471084, 0.39115560790730763, 0.39187330699286904,
	0.39259097762746653, 0.39330862285027807, 0.39402624547266846, 0.39474384809581897,
	0.39546143312697468, 0.39617900279439394, 0.39689655916107996, 0.39761410413740161,
	0.39833163949267963, 0.3990491668658428, 0.3997666877752416, 0.40048420362771825,
	0.40120171572701818, 0.40191922528164054, 0.4026367334122104, 0.40335424115847807,
	0.40407174948601965, 0.40478925929274345, 0.4055067714152919, 0.40622428663543486,
	0.40694180568655286, 0.40765932926031406, 0.40837685801364987, 0.40909439257613706,
	0.40981193355790618, 0.41052948155819136, 0.41124703717465011, 0.41196460101358157,
	0.41268217370117849, 0.41339975589595007, 0.41411734830245972, 0.41483495168649359,
	0.41555256689184, 0.41627019485874156, 0.41698783664415806, 0.41770549344388613,
	0.41842316661655371, 0.41914085770941539, 0.41985856848577591, 0.42057630095369647,
	0.4212940573954288, 0.4220118403967128, 0.42272965287466596, 0.42344749810245874,
	0.42416537972826229, 0.4248833017850962, 0.42560126868713205, 0.42631928520682666,
	0.42703735642601182, 0.42775548765299726, 0.42847368429719151, 0.42919195169324248,
	0.42991029486894938, 0.43062871825592591, 0.43134722534970926, 0.43206581833670799,
	0.43278449771754685, 0.43350326196763411, 0.43422210728189803, 0.43494102744791624,
	0.43566001387807135, 0.43637905580877273, 0.43709814064931923, 0.43781725444293462,
	0.43853638239477999, 0.43925550942811248, 0.43997462074582616, 0.44069370239166478,
	0.44141274181384327, 0.44213172842683107, 0.44285065414219771, 0.44356951379942716,
	0.44428830538092179, 0.44500702985758273, 0.44572569050653321, 0.44644429160135357,
	0.44716283652254918, 0.44788132556637655, 0.44859975398009805, 0.44931811089898183,
	0.45003637977646749, 0.45075454053791786, 0.45147257314276779, 0.45219046171110377,
	0.45290819807510324, 0.45362578368872347, 0.45434322927022863, 0.45506055222622127,
	0.45577777259242391, 0.45649490869143572, 0.45721197377154865, 0.45792897450445263,
	0.45864591153234424, 0.4593627815797327, 0.46007958027207102, 0.46079630480313094,
	0.46151295581477475, 0.46222953809942469, 0.46294605992469584, 0.4636625309706649,
	0.46437895918101818, 0.46509534730080027, 0.46581169034206538, 0.46652797532661938,
	0.4672441840980423, 0.4679602988489901, 0.46867630878828942, 0.46939221571446382,
	0.47010803648257171, 0.47082380117908934, 0.47153954665446429, 0.47225530581003144,
	0.47297109491395173, 0.47368690686085091, 0.47440273007220479, 0.47511860690332458,
	0.4758345978912118, 0.4765505117669217, 0.47726634673441987, 0.47798249690328876,
	0.47869892200555436, 0.47941568670945095, 0.48013307557553481, 0.48085169080541473,
	0.4815762243188777, 0.48230376812785836, 0.48298865302594413, 0.48365048716144127,
	0.48433217281723451, 0.48501997908987016, 0.4857049393349388, 0.48639358695540014,
	0.48708521103537089, 0.48777866713538426, 0.48847327151482117, 0.48916852196086363,
	0.48986466047386357, 0.49056226196227426, 0.4912609561334586, 0.49195991159712066,
	0.49265933257012928, 0.49335938349387237, 0.49405912380805728, 0.49475794930923805,
	0.49545598488769327, 0.49615394455525386, 0.49685207939944132, 0.4975503270753372,
	0.49824859884144446, 0.49894685218312285, 0.49964508155009241, 0.50034329857780913,
	0.50104151988761358, 0.50173976130622255, 0.50243803525310593, 0.50313634960165132,
	0.50383470730740221, 0.50453310646119232, 0.50523154057765118, 0.50592999904749625,
	0.50662846779718684, 0.50732693028278308, 0.50802536893622818, 0.50872376702082645,
	0.50942211054660425, 0.51012038960744033, 0.51081859851263334, 0.51151673454771263,
	0.5122147958740183, 0.51291277946641367, 0.5136106798205442, 0.51430848864257894,
	0.51500619528450564, 0.5157037875333087, 0.51640125244111545, 0.51709857702788387,
	0.51779574879658563, 0.51849275605995404, 0.51918958810660087, 0.51988623524647493,
	0.52058268877654723, 0.52127894090132088, 0.52197498463346481, 0.52267081369081669,
	0.52336642239895104, 0.52406180560363558, 0.52475695859456228, 0.52545187704011276,
	0.52614655693214918, 0.52684099453953559, 0.52753518636909058, 0.52822912913276021,
	0.52892281971997901, 0.52961625517432531, 0.53030943267374386, 0.53100234951372793,
	0.53169500309296314, 0.53238739090103782, 0.53307951050787572, 0.53377135955462995,
	0.53446293574580694, 0.53515423684243801, 0.53584526065614613, 0.53653600504397592,
	0.53722646790388595, 0.53791664717080334, 0.53860654081317116, 0.53929614682992622,
	0.53998546324784069, 0.54067448811919583, 0.54136321951972755, 0.54205165554683277,
	0.54273979431798514, 0.54342763396934135, 0.54411517265452558, 0.54480240854355255,
	0.54548933982188996, 0.54617596468963514, 0.54686228136079162, 0.54754828806264944,
	0.54823398303523074, 0.54891936453082357, 0.54960443081357335, 0.55028918015913186,
	0.55097361085436236, 0.55165772119708645, 0.5523415094958819, 0.55302497406990203,
	0.55370811324874747, 0.55439092537235457, 0.55507340879091682, 0.55575556186483221,
	0.5564373829646696, 0.55711887047115527, 0.5578000227751867, 0.55848083827784722,
	0.55916131539045166, 0.55984145253459838, 0.56052124814223314, 0.56120070065572825,
	0.56187980852797026, 0.56255857022246436, 0.56323698421343316, 0.56391504898594025,
	0.56459276303601302, 0.56527012487077599, 0.56594713300858968, 0.56662378597919449,
	0.56730008232386864, 0.56797602059558072, 0.56865159935915621, 0.5693268171914494,
	0.57000167268151491, 0.57067616443078883, 0.57135029105327306, 0.57202405117572475,
	0.57269744343785411, 0.57337046649251511, 0.57404311900591598, 0.57471539965782581,
	0.57538730714178166, 0.5760588401653095, 0.57672999745014031, 0.57740077773244458,
	0.57807117976304978, 0.57874120230767967, 0.57941084414718969, 0.58008010407781585,
	0.5807489809114158, 0.58141747347571682, 0.58208558061458382, 0.58275330118826774,
	0.58342063407367595, 0.58408757816464674, 0.58475413237221996, 0.58542029562491993,
	0.58608606686903664, 0.58675144506893051, 0.58741642920731241, 0.58808101828555681,
	0.58874521132401025, 0.58940900736230706, 0.59007240545968487, 0.59073540469531649,
	0.59139800416863764, 0.59206020299971318, 0.59272200032955302, 0.59338339532047757,
	0.59404438715650609, 0.59470497504368558, 0.59536515821051572, 0.59602493590828987,
	0.5966843074115451, 0.59734327201841986, 0.59800182905108257, 0.5986599778561793,
	0.59931771780523502, 0.59997504829517612, 0.60063196874862212, 0.60128847861441526,
	0.60194457736833518, 0.602600264513238, 0.60325553957971734, 0.60391040212659319,
	0.6045648517414749, 0.60521888804124646, 0.60587251067264325, 0.60652571931277555,
	0.60717851366975939, 0.60783089348327235, 0.60848285852514472, 0.60913440860000956,
	0.60978554354590153, 0.61043626323492628, 0.6110865675738959, 0.6117364565050265,
	0.61238593000661423, 0.61303498809373658, 0.61368363081897992, 0.61433185827316583,
	0.61497967058610703, 0.61562706792735611, 0.61627405050700079, 0.61692061857644476,
	0.61756677242921432, 0.61821251240177566, 0.61885783887437606, 0.6195027522718819,
	0.62014725306463969, 0.62079134176933481, 0.62143501894988729, 0.62207828521832753,
	0.6227211412357021, 0.62336358771297218, 0.62400562541192917, 0.62464725514610897,
	0.62528847778171515, 0.62592929423853405, 0.62656970549086077, 0.62720971256841374,
	0.62784931655724951, 0.62848851860066934, 0.62912731990011372, 0.62976572171604928,
	0.63040372536883038, 0.63104133223955439, 0.63167854377087551, 0.63231536146781442,
	0.6329517868985135, 0.63358782169497296, 0.63422346755373538, 0.63485872623652762,
	0.63549359957085128, 0.63612808945051147, 0.63676219783608601, 0.63739592675531453,
	0.63802927830341494, 0.63866225464330939, 0.63929485800575692, 0.6399270906893747,
	0.64055895506055405, 0.64119045355324333, 0.64182158866860106, 0.64245236297450004,
	0.64308277910487288, 0.64371283975888838, 0.64434254769993793, 0.6449719057544322,
	0.64560091681037146, 0.64622958381570406, 0.64685790977642255, 0.64748589775441034,
	0.648113550865004, 0.64874087227425292, 0.64936786519587453, 0.64999453288785636,
	0.65062087864871354, 0.6512469058133582, 0.65187261774857252, 0.65249801784805661,
	0.6531231095270309, 0.65374789621636398, 0.65437238135621345, 0.65499656838913933,
	0.65562046075268243, 0.65624406187136908, 0.6568673751481291, 0.6574904039550945,
	0.65811315162375938, 0.65873562143448083, 0.65935781660528792, 0.65997974027999939,
	0.66060139551560493, 0.66122278526891776, 0.66184391238246287, 0.66246477956960781,
	0.66308538939891881, 0.66370574427773299, 0.6643258464349604, 0.66494569790310754,
	0.66556530049954599, 0.6661846558070319, 0.66680376515351347, 0.66742262959124854,
	0.66804124987528613, 0.66865962644135468, 0.6692777593832292, 0.66989564842965255,
	0.67051329292089845, 0.67113069178508911, 0.67174784351438321, 0.67236474614118902,
	0.67298139721454719, 0.6735977937768981, 0.67421393234141602, 0.67482980887018185,
	0.67544541875344866, 0.67606075679032851, 0.67667581717126168, 0.67729059346266307,
	0.67790507859423987, 0.67851926484950098, 0.6791331438601047, 0.67974670660476333,
	0.68035994341356565, 0.6809728439787115, 0.68158539737285773, 0.68219759207646546,
	0.68280941601583434, 0.68342085661381102, 0.68403190085556109, 0.68464253537224318,
	0.68525274654596691, 0.68586252064004916, 0.68647184395924665, 0.687080703045442,
	0.68768908491496339, 0.68829697734446738, 0.68890436921276632, 0.68951125090611753,
	0.69011761479391176, 0.69072345578007377, 0.69132877193243591, 0.69193356518745541,
	0.69253784212111869, 0.69314161476998459, 0.69374490148313961, 0.69434772779571974,
	0.69495012735592532, 0.69555214303979207, 0.69615382858495278, 0.69675525135732674,
	0.69735649702420099, 0.69795767612939363, 0.69855892878349013, 0.69916041446883148,
	0.6997622687049585, 0.70036456072577613, 0.70096733308297099, 0.70157026342178685,
	0.70217025049112181, 0.70277011408752565, 0.70337209818378343, 0.70397626090791043,
	0.70458192971606859, 0.70518847490784609, 0.70579456584355205, 0.70641429362886343,
	0.70710678118654757, 0.70751224321528183, 0.70799028417391086, 0.7084806144558714,
	0.70897042093553431, 0.70946069125856803, 0.70995215439721415, 0.7104456503089619,
	0.71094134664529329, 0.71143799675041441, 0.71193114161418802, 0.71242388086161001,
	0.71291682413774049, 0.71340998826076296, 0.71390332213771557, 0.71439670271661837,
	0.71488997909802998, 0.7153830150970677, 0.71587570076453466, 0.7163679492060071,
	0.71685969095095048, 0.71735086973332318, 0.71784143990805571, 0.71833136488555227,
	0.71882061604938274, 0.71930917185754628, 0.71979701700162835, 0.7202841415914929,
	0.72077054037191468, 0.72125621198759748, 0.72174115831068453, 0.72222538383890189,
	0.72270889516657832, 0.72319170052639292, 0.72367380939685932, 0.72415523216908517,
	0.72463597986582762, 0.72511606390594419, 0.72559549590783889, 0.72607428752611625,
	0.72655245031640925, 0.72702999562401538, 0.72750693449265269, 0.72798327759021653,
	0.72845903514892552, 0.72893421691767624, 0.72940883212477703, 0.72988288944954915,
	0.73035639700150046, 0.73082936230601059, 0.73130179229560355, 0.73177369330603792,
	0.73224507107653736, 0.73271593075359875, 0.73318627689785432, 0.73365611349356952,
	0.73412544396037249, 0.73459427116686982, 0.73506259744585478, 0.73553042461081586,
	0.7359977539735193, 0.73646458636242462, 0.73693092214175548, 0.73739676123103381,
	0.73786210312493039, 0.73832694691328105, 0.73879129130115195, 0.73925513462883796,
	0.73971847489169351, 0.74018130975972174, 0.74064363659683152, 0.74110545247971416,
	0.74156675421627349, 0.74202753836357338, 0.74248780124525116, 0.74294753896838683,
	0.7434067474397793, 0.74386542238163567, 0.74432355934664407, 0.74478115373242715,
	0.74523820079537673, 0.74569469566385915, 0.74615063335081178, 0.74660600876571592,
	0.74706081672597258, 0.74751505196768198, 0.74796870915584279, 0.7484217828939872,
	0.74887426773326227, 0.74932615818098125, 0.74977744870865304, 0.75022813375952013,
	0.75067820775560834, 0.75112766510432272, 0.75157650020459632, 0.7520247074526184,
	0.75247228124715415, 0.75291921599448508, 0.75336550611297226, 0.75381114603727994,
	0.75425613022226212, 0.754700453146533, 0.7551441093157476, 0.75558709326558737,
	0.75602939956449822, 0.75647102281616119, 0.7569119576617398, 0.75735219878189786,
	0.75779174089861567, 0.75823057877680722, 0.75866870722575597, 0.75910612110038422,
	0.75954281530235457, 0.75997878478103487, 0.76041402453431395, 0.76084852960929739,
	0.76128229510287959, 0.76171531616221111, 0.76214758798505566, 0.7625791058200635,
	0.76300986496694911, 0.76343986077659709, 0.76386908865109093, 0.76429754404367356,
	0.76472522245865493, 0.76515211945125072, 0.76557823062738806, 0.76600355164345013,
	0.76642807820599046, 0.76685180607140302, 0.76727473104556498, 0.76769684898344726,
	0.7681181557886998, 0.76853864741321543, 0.76895831985666929, 0.7693771691660487,
	0.76979519143515962, 0.77021238280412663, 0.77062873945888011, 0.77104425763063822,
	0.77145893359537332, 0.77187276367328694, 0.77228574422826246, 0.77269787166733783,
	0.77310914244015938, 0.77351955303844289, 0.7739290999954288, 0.7743377798853518,
	0.77474558932290172, 0.77515252496269338, 0.77555858349872864, 0.77596376166388514,
	0.77636805622938521, 0.77677146400428621, 0.77717398183496611, 0.77757560660462355,
	0.77797633523277954, 0.77837616467477244, 0.77877509192129046, 0.77917311399787115,
	0.77957022796444608, 0.77996643091484741, 0.7803617199763706, 0.78075609230931053,
	0.78114954510648527, 0.78154207559283406, 0.7819336810249502, 0.78232435869066863,
	0.78271410590860147, 0.78310292002774529, 0.7834907984270495, 0.7838777385151231,
	0.78426373772957292, 0.78464879353677852, 0.78503290343154253, 0.78541606493657989,
	0.78579827560218873, 0.78617953300584575, 0.78655983475184232, 0.78693917847092243,
	0.78731756181987866, 0.78769498248122449, 0.78807143816279779, 0.7884469265974372,
	0.78882144554259548, 0.78919499278000604, 0.78956756611534351, 0.78993916337785419,
	0.79030978242003502, 0.79067942111728773, 0.79104807736758997, 0.79141574909115775,
	0.79178243423011663, 0.79214813074817714, 0.79251283663031735, 0.79287654988245115,
	0.79323926853112015, 0.79360099062317491, 0.79396171422546413, 0.79432143742452344,
	0.79468015832626837, 0.79503787505569623, 0.79539458575657429, 0.7957502885911496,
	0.79610498173985, 0.7964586634009867, 0.79681133179046693, 0.79716298514150319,
	0.79751362170433204, 0.79786323974592188, 0.79821183754969816, 0.79855941341526226,
	0.79890596565811833, 0.79925149260939676, 0.79959599261558278, 0.79993946403825211,
	0.80028190525380138, 0.80062331465318526, 0.80096369064165684, 0.80130303163850858,
	0.80164133607681676, 0.80197860240318652, 0.80231482907750218, 0.80265001457267948,
	0.80298415737441553, 0.80331725598094961, 0.80364930890281816, 0.80398031466261588,
	0.80431027179475845, 0.80463917884524716, 0.80496703437143802, 0.80529383694180579,
	0.80561958513571685, 0.80594427754320141, 0.80626791276472776, 0.80659048941097466,
	0.80691200610260849, 0.80723246147006256, 0.80755185415331032, 0.80787018280164746,
	0.80818744607346782, 0.80850364263604235, 0.80881877116529577, 0.80913283034558381,
	0.80944581886946454, 0.80975773543747587, 0.81006857875789873, 0.81037834754652616,
	0.81068704052642193, 0.81099465642767643, 0.8113011939871525, 0.81160665194822434,
	0.81191102906050838, 0.81221432407957572, 0.81251653576665783, 0.81281766288832957,
	0.81311770421617424, 0.81341665852642675, 0.81371452459958449, 0.81401130121999243,
	0.81430698717538674, 0.81460158125639015, 0.81489508225596641, 0.81518748896880122,
	0.81547880019062202, 0.81576901471742669, 0.81605813134461858, 0.81634614886602397,
	0.81663306607277042, 0.81691888175200811, 0.81720359468543713, 0.81748720364761029,
	0.81776970740396615, 0.81805110470854059, 0.81833139430130331, 0.81861057490503031,
	0.81888864522163651, 0.81916560392785043, 0.81944144967010224, 0.81971618105846789,
	0.81998979665947525, 0.82026229498755077, 0.82053367449484016, 0.82080393355911607,
	0.82107307046944766, 0.82134108340934309, 0.82160797043713618, 0.82187372946360537,
	0.8221383582272177, 0.82240185426814683, 0.8226642149034058, 0.82292543720725275,
	0.82318551800324402, 0.82344445387655307, 0.82370224121616897, 0.82395887629486919,
	0.82421435538936982, 0.8244686749345902, 0.824721831696133, 0.82497382293174082,
	0.82522464648901017, 0.8254743007563129, 0.82572278437908586, 0.82597009571984237,
	0.82621623217470008, 0.82646118957740378, 0.82670496192070642, 0.82694754148982241,
	0.82718891932845384, 0.82742908585802699, 0.82766803148295787, 0.82790574709524767,
	0.82814222447449837, 0.82837745662471085, 0.82861143809155602, 0.82884416527718308,
	0.8290756367312897, 0.82930585335647822, 0.82953481840753951, 0.82976253700758174,
	0.82998901445926787, 0.83021425188551534, 0.83043823841445374, 0.83066094679292535,
	0.83088235839647084, 0.83110254634069258, 0.83132171383225928, 0.83153997411352931,
	0.83175711069346359, 0.83197273777345027, 0.8321869264301186, 0.83239976066184929,
	0.83261086117037941, 0.83282001848170883, 0.83302740222285276, 0.83323307939043845,
	0.83343679110837487, 0.83363815081999504, 0.83383651192288477, 0.83403134195132256,
	0.83422597665769682, 0.83441621246025233, 0.83459291859283857, 0.83477263797786072,
	0.83497997353945141, 0.8351844628243722, 0.83538560006559048, 0.83558513944581903,
	0.8357832813335816, 0.83598013709652819, 0.83617569673864756, 0.836369871875419,
	0.83656292819515199, 0.83675485327533106, 0.83694548469132968, 0.83713487906270967,
	0.83732307560722585, 0.83751006115374926, 0.8376958232924826, 0.83788037020581441,
	0.83806372660444639, 0.8382459231231556, 0.83842698661392523, 0.83860693371146688,
	0.83878576833965468, 0.83896348313766578, 0.83914006395668683, 0.83931549568994412,
	0.83948976735147796, 0.8396628748267172, 0.83983482081905203, 0.84000561260757378,
	0.8401752588078758, 0.84034376629335894, 0.84051113805014288, 0.84067737232606754,
	0.84084246314629574, 0.8410064020737007, 0.8411691808887527, 0.84133079459908811,
	0.84149124394038621, 0.8416505364833814, 0.84180868576970602, 0.84196570851924002,
	0.84212162063359308, 0.84227643316757517, 0.84243014947900319, 0.84258276439657531,
	0.8427342656046114, 0.84288463675562708, 0.84303386132572966, 0.84318192608991793,
	0.8433288233390045, 0.84347455146064043, 0.84361911404582013, 0.84376251805373637,
	0.84390477167456113, 0.84404588241013623, 0.84418585566608173, 0.84432469393159326,
	0.84446239647786125, 0.84459895944127217, 0.84473437615266644, 0.84486863760180009,
	0.84500173296472547, 0.84513365015662545, 0.84526437639561558, 0.84539389877129267,
	0.84552220480697282, 0.84564928299218067, 0.84577512324994908, 0.84589971729924718,
	0.84602305888017804, 0.84614514382706563, 0.84626596999652737, 0.84638553707708408,
	0.84650384631864772, 0.84662090022284264, 0.84673670222991415, 0.84685125642868442,
	0.84696456730550951, 0.84707663953910028, 0.84718747784134552, 0.8472970868401043,
	0.84740547099784647, 0.84751263455943804, 0.84761858152269465, 0.84772331562611303,
	0.84782684034915123, 0.84792915892136489, 0.84803027433754752, 0.84813018937672258,
	0.84822890662340344, 0.84832642848996975, 0.84842275723935112, 0.84851789500745889,
	0.84861184382499177, 0.84870460563838324, 0.84879618232975207, 0.84888657573580018,
	0.84897578766562642, 0.84906381991752733, 0.84915067429477198, 0.84923635262047281,
	0.84932085675161251, 0.84940418859231726, 0.84948635010648033, 0.84956734332982919,
	0.84964717038154314, 0.84972583347553043, 0.84980333493146609, 0.849879677185708,
	0.84995486280219779, 0.85002889448346297, 0.85010177508183959, 0.85017350761102939,
	0.85024409525812294, 0.85031354139620308, 0.85038184959768026, 0.85044902364846675,
	0.8505150675631552, 0.85057998560132853, 0.8506437822851598, 0.8507064624184435,
	0.85076803110722032, 0.8508284937821452, 0.85088785622276375, 0.85094612458382579,
	0.85100330542380043, 0.85105940573570704, 0.85111443298037026, 0.85116839512217246,
	0.85122130066733004, 0.85127315870465747, 0.85132397894869738, 0.85137377178497853,
	0.85142254831701536, 0.85147032041446047, 0.85151710076157094, 0.85156290290481762,
	0.85160774129804906, 0.85165163134309685, 0.85169458942304888, 0.8517366329246,
	0.85177778024490414, 0.8518180507771097, 0.85185746486738256, 0.85189604373450301,
	0.85193380934127216, 0.85197078420491468, 0.85200699113159817, 0.8520424528583338,
	0.85207719158426187, 0.85211122837332687, 0.85214458241260949, 0.85217727011663535,
	0.8522093040801314, 0.85224069190332252, 0.85227143494994839, 0.85230152715622787,
	0.85233095410054427, 0.85235969268756051, 0.85238771202945396, 0.85241497648047426,
	0.85244145240670066, 0.85246712131734803, 0.85249200352276477, 0.8525161973821026,
	0.85253993145497886, 0.85256357358374457, 0.85258732649626034, 0.85260982899320847,
	0.85262479913681799, 0.85260982899320858, 0.85258732649626034, 0.85256357358374457,
	0.85253993145497897, 0.8525161973821026, 0.85249200352276477, 0.85246712131734803,
	0.85244145240670077, 0.85241497648047426, 0.85238771202945396, 0.85235969268756051,
	0.85233095410054427, 0.85230152715622776, 0.85227143494994828, 0.8522406919033223,
	0.85220930408013151, 0.85217727011663535, 0.85214458241260949, 0.85211122837332687,
	0.85207719158426176, 0.8520424528583338, 0.85200699113159817, 0.85197078420491468,
	0.85193380934127227, 0.85189604373450301, 0.85185746486738256, 0.8518180507771097,
	0.85177778024490425, 0.85173663292460189, 0.85169458942304899, 0.85165163134309685,
	0.85160774129804917, 0.85156290290481762, 0.85151710076157094, 0.85147032041446036,
	0.85142254831701547, 0.85137377178497864, 0.85132397894869727, 0.85127315870465736,
	0.85122130066733004, 0.85116839512217246, 0.85111443298037026, 0.85105940573570693,
	0.85100330542380043, 0.85094612458382568, 0.85088785622276364, 0.85082849378214531,
	0.85076803110722032, 0.85070646241844361, 0.85064378228516002, 0.85057998560132864,
	0.85051506756315509, 0.85044902364846675, 0.85038184959768026, 0.85031354139620319,
	0.85024409525812283, 0.8501735076110295, 0.85010177508183959, 0.85002889448346297,
	0.84995486280219767, 0.849879677185708, 0.84980333493146609, 0.84972583347553032,
	0.84964717038154314, 0.84956734332982908, 0.84948635010648033, 0.84940418859231726,
	0.84932085675161229, 0.84923635262047303, 0.84915067429477187, 0.84906381991752733,
	0.84897578766562631, 0.84888657573580018, 0.84879618232975196, 0.84870460563838312,
	0.84861184382499188, 0.84851789500745889, 0.84842275723935112, 0.84832642848996953,
	0.84822890662340344, 0.84813018937672258, 0.84803027433754752, 0.84792915892136489,
	0.84782684034915134, 0.84772331562611292, 0.84761858152269465, 0.84751263455943804,
	0.84740547099784636, 0.8472970868401043, 0.8471874778413454, 0.8470766395391004,
	0.84696456730550951, 0.84685125642868431, 0.84673670222991426, 0.84662090022284264,
	0.84650384631864772, 0.84638553707708108, 0.84626596999652737, 0.84614514382706574,
	0.84602305888017804, 0.84589971729924718, 0.84577512324994908, 0.84564928299218067,
	0.84552220480697282, 0.84539389877129256, 0.84526437639561558, 0.84513365015662534,
	0.84500173296472547, 0.84486863760180009, 0.84473437615266667, 0.84459895944127206,
	0.84446239647786125, 0.84432469393159315, 0.84418585566608162, 0.84404588241013634,
	0.84390477167456113, 0.84376251805373625, 0.84361911404582013, 0.84347455146064043,
	0.84332882333900439, 0.84318192608991793, 0.84303386132572966, 0.84288463675562697,
	0.8427342656046114, 0.84258276439657531, 0.8424301494790033, 0.84227643316757517,
	0.84212162063359308, 0.84196570851923991, 0.84180868576970602, 0.8416505364833814,
	0.84149124394038621, 0.84133079459908811, 0.8411691808887527, 0.8410064020737007,
	0.84084246314629585, 0.84067737232606754, 0.84051113805014277, 0.84034376629335894,
	0.8401752588078758, 0.84000561260757378, 0.83983482081905214, 0.8396628748267172,
	0.83948976735147807, 0.83931549568994401, 0.83914006395668694, 0.83896348313766589,
	0.83878576833965468, 0.83860693371146688, 0.83842698661392523, 0.8382459231231556,
	0.83806372660444639, 0.83788037020581441, 0.83769582329248249, 0.83751006115374926,
	0.83732307560722585, 0.83713487906270967, 0.83694548469132968, 0.83675485327533106,
	0.83656292819515199, 0.83636987187541911, 0.83617569673864756, 0.83598013709652819,
	0.83578328133358171, 0.83558513944581903, 0.83538560006559048, 0.83518446282437231,
	0.83497997353945141, 0.83477263797786072, 0.83459291859283857, 0.83441621246025199,
	0.83422597665769693, 0.83403134195132267, 0.83383651192288477, 0.83363815081999504,
	0.83343679110837476, 0.83323307939043856, 0.83302740222285288, 0.83282001848170872,
	0.8326108611703793, 0.83239976066184929, 0.8321869264301186, 0.83197273777345015,
	0.83175711069346359, 0.8315399741135292, 0.83132171383225928, 0.83110254634069247,
	0.83088235839647084, 0.83066094679292546, 0.83043823841445374, 0.83021425188551534,
	0.82998901445926798, 0.82976253700758162, 0.82953481840753951, 0.82930585335647822,
	0.82907563673128981, 0.82884416527718296, 0.82861143809155602, 0.82837745662471085,
	0.82814222447449848, 0.82790574709524778, 0.82766803148295787, 0.82742908585802699,
	0.82718891932845384, 0.82694754148982241, 0.82670496192070642, 0.82646118957740355,
	0.82621623217469986, 0.82597009571984248, 0.82572278437908586, 0.8254743007563129,
	0.82522464648901017, 0.82497382293174093, 0.82472183169613289, 0.8244686749345902,
	0.82421435538936993, 0.82395887629486908, 0.82370224121616908, 0.82344445387655296,
	0.82318551800324402, 0.82292543720725264, 0.8226642149034058, 0.82240185426814694,
	0.82213835822721759, 0.82187372946360526, 0.82160797043713618, 0.82134108340934309,
	0.82107307046944766, 0.82080393355911596, 0.82053367449484027, 0.82026229498755077,
	0.81998979665947513, 0.81971618105846789, 0.81944144967010224, 0.81916560392785032,
	0.81888864522163662, 0.81861057490503031, 0.81833139430130331, 0.81805110470854037,
	0.81776970740396604, 0.81748720364761029, 0.81720359468543713, 0.816918881752008,
	0.81663306607277031, 0.81634614886602419, 0.81605813134461858, 0.8157690147174268,
	0.81547880019062202, 0.81518748896880122, 0.8148950822559663, 0.81460158125639015,
	0.81430698717538674, 0.81401130121999254, 0.81371452459958449, 0.81341665852642675,
	0.81311770421617424, 0.81281766288832957, 0.81251653576665772, 0.81221432407957583,
	0.81191102906050838, 0.81160665194822423, 0.81130119398715239, 0.81099465642767643,
	0.81068704052642193, 0.81037834754652616, 0.81006857875789873, 0.80975773543747587,
	0.80944581886946443, 0.80913283034558381, 0.80881877116529577, 0.80850364263604224,
	0.80818744607346793, 0.80787018280164746, 0.80755185415331043, 0.80723246147006267,
	0.80691200610260849, 0.80659048941097466, 0.80626791276472776, 0.8059442775432013,
	0.80561958513571696, 0.80529383694180579, 0.80496703437143813, 0.80463917884524716,
	0.80431027179475834, 0.80398031466261588, 0.80364930890281816, 0.80331725598094961,
	0.80298415737441553, 0.80265001457267937, 0.80231482907750229, 0.80197860240318664,
	0.80164133607681676, 0.80130303163850847, 0.80096369064165684, 0.80062331465318515,
	0.80028190525380138, 0.799939464038252, 0.79959599261558267, 0.79925149260939687,
	0.79890596565811833, 0.79855941341526226, 0.79821183754969827, 0.79786323974592188,
	0.79751362170433204, 0.79716298514150308, 0.79681133179046693, 0.79645866340098681,
	0.79610498173985, 0.7957502885911496, 0.79539458575657418, 0.79503787505569623,
	0.79468015832626837, 0.79432143742452344, 0.79396171422546424, 0.79360099062317491,
	0.79323926853112015, 0.79287654988245115, 0.79251283663031735, 0.79214813074817703,
	0.79178243423011663, 0.79141574909115775, 0.79104807736758986, 0.79067942111728784,
	0.79030978242003491, 0.78993916337785419, 0.78956756611534351, 0.78919499278000604,
	0.78882144554259548, 0.78844692659743731, 0.78807143816279779, 0.78769498248122438,
	0.78731756181987866, 0.78693917847092232, 0.78655983475184221, 0.78617953300584575,
	0.78579827560218873, 0.78541606493658001, 0.78503290343154242, 0.78464879353677841,
	0.78426373772957292, 0.7838777385151231, 0.7834907984270495, 0.78310292002774529,
	0.78271410590860135, 0.78232435869066863, 0.7819336810249502, 0.78154207559283406,
	0.78114954510648527, 0.78075609230931042, 0.78036171997637049, 0.77996643091484741,
	0.77957022796444619, 0.77917311399787126, 0.77877509192129046, 0.77837616467477244,
	0.77797633523277954, 0.77757560660462355, 0.77717398183496611, 0.77677146400428621,
	0.77636805622938532, 0.77596376166388514, 0.77555858349872853, 0.77515252496269349,
	0.77474558932290183, 0.7743377798853518, 0.77392909999542892, 0.77351955303844289,
	0.77310914244015949, 0.77269787166733783, 0.77228574422826246, 0.77187276367328705,
	0.77145893359537332, 0.77104425763063833, 0.77062873945888, 0.77021238280412663,
	0.76979519143515951, 0.76937716916604881, 0.7689583198566694, 0.76853864741321543,
	0.7681181557886998, 0.76769684898344737, 0.76727473104556487, 0.76685180607140291,
	0.76642807820599035, 0.76600355164344991, 0.76557823062738795, 0.76515211945125061,
	0.76472522245865493, 0.76429754404367367, 0.76386908865109082, 0.7634398607765972,
	0.76300986496694911, 0.76257910582006339, 0.76214758798505577, 0.761715316162211,
	0.76128229510287959, 0.7608485296092975, 0.76041402453431395, 0.75997878478103487,
	0.75954281530235468, 0.75910612110038433, 0.75866870722575597, 0.75823057877680711,
	0.75779174089861567, 0.75735219878189786, 0.75691195766173969, 0.75647102281616119,
	0.75602939956449833, 0.75558709326558737, 0.7551441093157476, 0.754700453146533,
	0.75425613022226212, 0.75381114603727994, 0.75336550611297226, 0.75291921599448508,
	0.75247228124715415, 0.75202470745261829, 0.75157650020459632, 0.75112766510432283,
	0.75067820775560845, 0.75022813375952013, 0.74977744870865304, 0.74932615818098114,
	0.74887426773326227, 0.7484217828939872, 0.7479687091558429, 0.74751505196768187,
	0.74706081672597269, 0.74660600876571592, 0.74615063335081189, 0.74569469566385926,
	0.74523820079537673, 0.74478115373242715, 0.74432355934664385, 0.74386542238163555,
	0.74340674743977941, 0.74294753896838683, 0.74248780124525127, 0.74202753836357338,
	0.7415667542162736, 0.74110545247971404, 0.74064363659683119, 0.74018130975972174,
	0.73971847489169362, 0.73925513462883807, 0.73879129130115218, 0.73832694691328105,
	0.73786210312493039, 0.73739676123103381, 0.73693092214175537, 0.73646458636242462,
	0.7359977539735193, 0.73553042461081597, 0.73506259744585478, 0.73459427116686959,
	0.73412544396037249, 0.73365611349356952, 0.73318627689785432, 0.73271593075359875,
	0.73224507107653747, 0.73177369330603792, 0.73130179229560366, 0.73082936230601059,
	0.73035639700150035, 0.72988288944954915, 0.72940883212477703, 0.72893421691767624,
	0.7284590351489254, 0.72798327759021653, 0.72750693449265269, 0.72702999562401549,
	0.72655245031640925, 0.72607428752611625, 0.72559549590783878, 0.72511606390594419,
	0.72463597986582773, 0.72415523216908517, 0.72367380939685932, 0.72319170052639303,
	0.72270889516657832, 0.72222538383890178, 0.72174115831068442, 0.72125621198759748,
	0.72077054037191468, 0.72028414159149279, 0.71979701700162846, 0.71930917185754617,
	0.71882061604938263, 0.71833136488555216, 0.71784143990805571, 0.71735086973332307,
	0.71685969095095059, 0.71636794920600699, 0.71587570076453466, 0.7153830150970677,
	0.71488997909802998, 0.71439670271661848, 0.71390332213771557, 0.71340998826076296,
	0.71291682413774038, 0.71242388086161013, 0.71193114161418813, 0.71143799675041453,
	0.71094134664529318, 0.7104456503089619, 0.70995215439721415, 0.70946069125856814,
	0.7089704209355342, 0.7084806144558714, 0.70799028417391086, 0.70751224321528161,
	0.70710678118654757, 0.70641429362886343, 0.70579456584355216, 0.70518847490784597,
	0.70458192971606859, 0.70397626090791054, 0.70337209818378355, 0.70277011408752565,
	0.70217025049112192, 0.70157026342178685, 0.70096733308297088, 0.70036456072577613,
	0.69976226870495839, 0.69916041446883148, 0.69855892878349013, 0.69795767612939374,
	0.69735649702420111, 0.69675525135732663, 0.69615382858495278, 0.69555214303979196,
	0.69495012735592521, 0.69434772779571985, 0.69374490148313972, 0.6931416147699847,
	0.69253784212111869, 0.69193356518745541, 0.69132877193243591, 0.69072345578007388,
	0.69011761479391176, 0.68951125090611776, 0.68890436921276643, 0.68829697734446738,
	0.6876890849149635, 0.687080703045442, 0.68647184395924665, 0.68586252064004904,
	0.68525274654596713, 0.68464253537224318, 0.68403190085556109, 0.68342085661381102,
	0.68280941601583434, 0.68219759207646546, 0.68158539737285762, 0.6809728439787115,
	0.68035994341356576, 0.67974670660476333, 0.6791331438601047, 0.67851926484950087,
	0.67790507859423998, 0.67729059346266329, 0.67667581717126157, 0.67606075679032851,
	0.67544541875344877, 0.67482980887018207, 0.67421393234141602, 0.6735977937768981,
	0.67298139721454731, 0.67236474614118891, 0.67174784351438332, 0.67113069178508911,
	0.67051329292089834, 0.66989564842965255, 0.6692777593832292, 0.66865962644135468,
	0.66804124987528613, 0.66742262959124865, 0.66680376515351347, 0.66618465580703179,
	0.6655653004995461, 0.66494569790310754, 0.66432584643496029, 0.66370574427773299,
	0.66308538939891892, 0.66246477956960781, 0.66184391238246287, 0.66122278526891776,
	0.66060139551560504, 0.65997974027999928, 0.65935781660528792, 0.65873562143448083,
	0.6581131516237595, 0.65749040395509439, 0.65686737514812898, 0.65624406187136897,
	0.65562046075268232, 0.65499656838913944, 0.65437238135621334, 0.65374789621636398,
	0.6531231095270309, 0.65249801784805672, 0.65187261774857264, 0.65124690581335809,
	0.65062087864871365, 0.64999453288785647, 0.64936786519587453, 0.64874087227425303,
	0.648113550865004, 0.64748589775441034, 0.64685790977642244, 0.64622958381570406,
	0.64560091681037157, 0.64497190575443231, 0.64434254769993793, 0.64371283975888849,
	0.64308277910487299, 0.64245236297450004, 0.64182158866860106, 0.64119045355324322,
	0.64055895506055394, 0.6399270906893747, 0.63929485800575692, 0.63866225464330939,
	0.63802927830341483, 0.63739592675531453, 0.6367621978360859, 0.63612808945051136,
	0.63549359957085128, 0.63485872623652762, 0.63422346755373549, 0.63358782169497307,
	0.6329517868985135, 0.63231536146781442, 0.63167854377087562, 0.63104133223955428,
	0.63040372536883049, 0.62976572171604916, 0.62912731990011372, 0.62848851860066945,
	0.62784931655724951, 0.62720971256841351, 0.62656970549086066, 0.62592929423853405,
	0.62528847778171515, 0.62464725514610897, 0.62400562541192917, 0.62336358771297207,
	0.62272114123570221, 0.62207828521832742, 0.62143501894988717, 0.62079134176933493,
	0.6201472530646398, 0.6195027522718819, 0.61885783887437606, 0.61821251240177566,
	0.61756677242921432, 0.61692061857644476, 0.61627405050700079, 0.615627067927356,
	0.61497967058610692, 0.61433185827316594, 0.61368363081898003, 0.61303498809373658,
	0.61238593000661412, 0.6117364565050265, 0.6110865675738959, 0.6104362632349265,
	0.60978554354590153, 0.60913440860000945, 0.60848285852514472, 0.60783089348327246,
	0.60717851366975939, 0.60652571931277544, 0.60587251067264314, 0.60521888804124646,
	0.6045648517414749, 0.60391040212659308, 0.60325553957971734, 0.602600264513238,
	0.60194457736833507, 0.60128847861441514, 0.60063196874862212, 0.59997504829517612,
	0.59931771780523513, 0.5986599778561793, 0.59800182905108257, 0.59734327201841975,
	0.59668430741154499, 0.59602493590828998, 0.5953651582105155, 0.59470497504368558,
	0.59404438715650598, 0.59338339532047724, 0.59272200032955313, 0.59206020299971318,
	0.59139800416863753, 0.59073540469531649, 0.59007240545968487, 0.58940900736230706,
	0.58874521132401003, 0.58808101828555681, 0.58741642920731241, 0.5867514450689304,
	0.58608606686903664, 0.58542029562491993, 0.58475413237221996, 0.58408757816464685,
	0.58342063407367584, 0.58275330118826763, 0.58208558061458404, 0.58141747347571693,
	0.58074898091141591, 0.58008010407781585, 0.57941084414718969, 0.57874120230767967,
	0.57807117976304978, 0.57740077773244458, 0.57672999745013998, 0.5760588401653095,
	0.57538730714178166, 0.5747153996578257, 0.57404311900591609, 0.57337046649251522,
	0.57269744343785423, 0.57202405117572486, 0.57135029105327306, 0.57067616443078895,
	0.57000167268151491, 0.5693268171914494, 0.56865159935915621, 0.56797602059558083,
	0.56730008232386864, 0.56662378597919449, 0.56594713300858968, 0.56527012487077599,
	0.56459276303601302, 0.56391504898594025, 0.56323698421343316, 0.56255857022246436,
	0.56187980852797015, 0.56120070065572825, 0.56052124814223314, 0.55984145253459849,
	0.55916131539045166, 0.55848083827784734, 0.55780002277518659, 0.55711887047115527,
	0.5564373829646696, 0.5557555618648321, 0.55507340879091682, 0.55439092537235457,
	0.55370811324874747, 0.55302497406990214, 0.5523415094958819, 0.55165772119708645,
	0.55097361085436225, 0.55028918015913175, 0.54960443081357335, 0.54891936453082357,
	0.54823398303523074, 0.54754828806264944, 0.54686228136079174, 0.54617596468963514,
	0.54548933982189007, 0.54480240854355255, 0.54411517265452558, 0.54342763396934146,
	0.54273979431798514, 0.54205165554683288, 0.54136321951972755, 0.54067448811919572,
	0.53998546324784069, 0.53929614682992622, 0.53860654081317105, 0.53791664717080334,
	0.53722646790388606, 0.53653600504397592, 0.53584526065614624, 0.53515423684243779,
	0.53446293574580683, 0.53377135955462995, 0.53307951050787561, 0.53238739090103782,
	0.53169500309296314, 0.53100234951372838, 0.53030943267374364, 0.5296162551743252,
	0.52892281971997901, 0.5282291291327601, 0.52753518636909058, 0.5268409945395357,
	0.52614655693214907, 0.52545187704011276, 0.52475695859456228, 0.52406180560363547,
	0.52336642239895081, 0.52267081369081658, 0.5219749846334647, 0.52127894090132088,
	0.52058268877654712, 0.51988623524647493, 0.51918958810660087, 0.51849275605995404,
	0.51779574879658563, 0.51709857702788375, 0.51640125244111545, 0.51570378753330859,
	0.51500619528450553, 0.51430848864257872, 0.51361067982054431, 0.51291277946641367,
	0.51221479587401819, 0.51151673454771251, 0.51081859851263345, 0.51012038960744033,
	0.50942211054660402, 0.50872376702082633, 0.50802536893622807, 0.50732693028278308,
	0.50662846779718684, 0.50592999904749625, 0.50523154057765129, 0.50453310646119243,
	0.50383470730740221, 0.50313634960165132, 0.50243803525310604, 0.50173976130622255,
	0.50104151988761358, 0.50034329857780913, 0.49964508155009235, 0.49894685218312279,
	0.4982485988414444, 0.49755032707533714, 0.49685207939944132, 0.49615394455525386,
	0.49545598488769321, 0.49475794930923805, 0.49405912380805733, 0.49335938349387243,
	0.49265933257012928, 0.49195991159712071, 0.49126095613345866, 0.4905622619622742,
	0.48986466047386362, 0.48916852196086369, 0.48847327151482112, 0.48777866713538431,
	0.48708521103537089, 0.48639358695540019, 0.4857049393349388, 0.48501997908987016,
	0.48433217281723462, 0.4836504871614411, 0.48298865302594396, 0.48230376812785841,
	0.4815762243188777, 0.48085169080541479, 0.48013307557553481, 0.47941568670945089,
	0.47869892200555436, 0.47798249690328865, 0.47726634673441981, 0.4765505117669217,
	0.47583459789121174, 0.47511860690332458, 0.47440273007220479, 0.4736869068608508,
	0.47297109491395167, 0.47225530581003139, 0.47153954665446424, 0.47082380117908934,
	0.47010803648257177, 0.46939221571446382, 0.46867630878828942, 0.4679602988489901,
	0.46724418409804236, 0.46652797532661933, 0.46581169034206532, 0.46509534730080038,
	0.46437895918101812, 0.4636625309706649, 0.4629460599246959, 0.46222953809942469,
	0.46151295581477469, 0.460796304803131, 0.46007958027207096, 0.45936278157973265,
	0.45864591153234424, 0.45792897450445252, 0.45721197377154876, 0.45649490869143572,
	0.45577777259242391, 0.45506055222622127, 0.45434322927022858, 0.45362578368872353,
	0.45290819807510324, 0.45219046171110383, 0.45147257314276779, 0.45075454053791786,
	0.45003637977646749, 0.44931811089898177, 0.44859975398009794, 0.44788132556637639,
	0.44716283652254918, 0.44644429160135346, 0.44572569050653316, 0.44500702985758273,
	0.44428830538092184, 0.44356951379942711, 0.44285065414219776, 0.44213172842683102,
	0.44141274181384321, 0.44069370239166483, 0.43997462074582611, 0.43925550942811248,
	0.43853638239477999, 0.43781725444293468, 0.43709814064931929, 0.43637905580877279,
	0.43566001387807135, 0.43494102744791618, 0.43422210728189803, 0.43350326196763411,
	0.4327844977175469, 0.43206581833670793, 0.43134722534970921, 0.43062871825592314,
	0.42991029486894938, 0.42919195169324248, 0.42847368429719157, 0.42775548765299731,
	0.42703735642601182, 0.4263192852068266, 0.42560126868713216, 0.42488330178509626,
	0.42416537972826229, 0.42344749810245869, 0.42272965287466591, 0.42201184039671286,
	0.4212940573954288, 0.42057630095369652, 0.41985856848577591, 0.41914085770941539,
	0.41842316661655371, 0.41770549344388613, 0.41698783664415806, 0.41627019485874167,
	0.41555256689183989, 0.41483495168649354, 0.41411734830245972, 0.41339975589595013,
	0.41268217370117855, 0.41196460101358157, 0.41124703717465022, 0.41052948155819124,
	0.40981193355790624, 0.40909439257613706, 0.40837685801364987, 0.40765932926031406,
	0.40694180568655275, 0.40622428663543492, 0.4055067714152919, 0.4047892592927434,
	0.4040717494860197, 0.40335424115847807, 0.40263673341221035, 0.40191922528164048,
	0.40120171572701824, 0.40048420362771825, 0.39976668777524166, 0.39904916686584274,
	0.39833163949267969, 0.3976141041374015, 0.39689655916107991, 0.39617900279439389,
	0.39546143312697468, 0.39474384809581892, 0.3940262454726684, 0.39330862285027807,
	0.39259097762746648, 0.39187330699286899, 0.39115560790730752, 0.39043787708471084,
	0.38972011097152187, 0.38900230572456157, 0.38828445718734134, 0.38756656086486335,
	0.38684861189699865, 0.38613060503061264, 0.38541253459070329, 0.38469439445094605,
	0.38397617800420414, 0.38325787813377055, 0.38253948718636732, 0.38182099694825966,
	0.3811023986262167, 0.38038368283555402, 0.37966483959799568, 0.37894585835274469,
	0.3782267279847758, 0.377507436874993, 0.37678797297737998, 0.37606832392840339,
	0.37534847719340819, 0.37462842025299409, 0.37390814082854823, 0.37318762713888426,
	0.37246686816717478, 0.3717458538958156, 0.37102457543135109, 0.37030302488387612,
	0.36958119477184315, 0.3688590765706507, 0.36813665777025306, 0.36741391637717685,
	0.36669081105325252, 0.36596726381940853, 0.36524313038074885, 0.3645181520638357,
	0.36379189293843456, 0.36306373120783098, 0.36233324003371242, 0.36160196441680381,
	0.36041870693851746, 0.35973513430401544, 0.35906540298374562, 0.35839488886317733,
	0.35772065144151011, 0.35704334257573184, 0.35636399749459652, 0.35568333276717695,
	0.35500175474175333, 0.35431947097378053, 0.35363657663080511, 0.35295310801422869,
	0.3522690736065251, 0.35158447148684685, 0.3508992986936858, 0.35021355586093744,
	0.34952724911119054, 0.3488403904025843, 0.34815299705457742, 0.34746509088951039,
	0.34677669724726212, 0.34608784401796477, 0.34539856076796543, 0.34470887799167754,
	0.3440188264969295, 0.34332843691748682, 0.34263773933944924, 0.34194676302548499,
	0.34125553622057214, 0.34056408602398097, 0.33987243831394748, 0.33918061771333424,
	0.33848864758660935, 0.33779655006007747, 0.33710434605893935, 0.33641205535604018,
	0.33571969662828255, 0.33502728751759459, 0.33433484469407798, 0.3336423839195638,
	0.33294992011027125, 0.33225746739763912, 0.33156503918668845, 0.33087264821150347,
	0.33018030658758662, 0.32948802586096987, 0.32879581705407496, 0.32810369070837297,
	0.32741165692395158, 0.32671972539615118, 0.32602790544940713, 0.32533620606854141,
	0.32464463592765902, 0.323953203416883, 0.32326191666713416, 0.32257078357317809,
	0.32187981181515041, 0.32118900887878943, 0.32049838207457598, 0.31980793855604217,
	0.3191176853374334, 0.31842762931098229, 0.31773777726402019, 0.31704813589617487,
	0.31635871183690084, 0.31566951166361418, 0.31498054192070118, 0.3142918091396939,
	0.31360331986091683, 0.3129150806569293, 0.31222709815809963, 0.31153937908067503,
	0.31085193025771662, 0.31016475867329701, 0.30947787150037304, 0.30879127614268165,
	0.30810498028119593, 0.30741899192537153, 0.30673331946962801, 0.3060479717552958,
	0.30536295813817749, 0.30467828856168555, 0.30399397363523262, 0.30331002471716262,
	0.30262645400092869, 0.30194327460245268, 0.30126050064550985, 0.30057814734055321,
	0.29989623105050484, 0.29921476933465191, 0.29853378095886901, 0.29785328585701559,
	0.29717330502478312, 0.29649386032402464, 0.29581497417362002, 0.29513666910365416,
	0.29445896715500852, 0.2937818891184924, 0.29310545362790302, 0.29242967615006854,
	0.29175456794835281, 0.29108013512787734, 0.29040637788953783, 0.28973329011527471,
	0.28906085937276155, 0.28838906736797143, 0.2877178908047397, 0.28704730255408512,
	0.28637727301195065, 0.28570777153836618, 0.28503876791307858, 0.28437023378923659,
	0.28370214415164391, 0.28303447876975596, 0.28236722357034871, 0.2817003717472088,
	0.28103392429791163, 0.28036788957347802, 0.27970228141212361, 0.2790371155877443,
	0.27837240470590496, 0.27770815230950052, 0.27704434763859137, 0.27638096288959174,
	0.27571795458823961, 0.27505526970502658, 0.27439285565398852, 0.27373067187252681,
	0.27306869986685517, 0.27240694879343191, 0.27174545483499635, 0.2710842744583421,
	0.27042347351467783, 0.26976311542660325, 0.26910325190612278, 0.26844391862177358,
	0.26778513637357415, 0.26712691649162917, 0.2664692681463886, 0.26581220525052662,
	0.26515575123745527, 0.26449994068098298, 0.26384481724756814, 0.26319042800613524,
	0.26253681497288051, 0.26188400603236489, 0.261232008588141, 0.26058080949304713,
	0.25993038321885081, 0.25928070712166013, 0.25863177945834898, 0.25798363419358822,
	0.25733634738887795, 0.25669003232520099, 0.25604482287109032, 0.25540084663612705,
	0.25475819391666532, 0.2541169008734897, 0.25347698972617494, 0.25283858861662478,
	0.25220181367346811, 0.25156614799028054, 0.25093160629135086, 0.25029940948492047,
	0.24966975226601371, 0.24904281156727018, 0.24842005964680891, 0.24780423502362248,
	0.24722081215530578, 0.24664980038650339, 0.24608321009597978, 0.24529198310792089,
	0.24455318104934612, 0.24382969333278462, 0.24309893766343837, 0.24237909047862982,
	0.24166851511401943, 0.24096404964785004, 0.240261985958726, 0.23956277358615638,
	0.23886769202884897, 0.23817681541282515, 0.23749016625265271, 0.23680456233501304,
	0.23612101364500596, 0.23544153226281261, 0.23476043823971318, 0.23407586907719119,
	0.2333933250572513, 0.23270976450247036, 0.23202624961768764, 0.23134373779113779,
	0.2306622507249812, 0.22998167229931271, 0.22930196547897047, 0.22862314790917002,
	0.22794525543167113, 0.22726832666824004, 0.22659239702886491, 0.22591749489264989,
	0.22524363849552004, 0.22457083362713004, 0.22389907225622746, 0.22322833220608101,
	0.22255857824668335, 0.22188976522101669, 0.22122184379290541, 0.22055476897037149,
	0.2198885107416044, 0.21922306498702901, 0.21855846152300351, 0.21789476562522447,
	0.21723207092423916, 0.21657048496130493, 0.21591011166714097, 0.2152510355362946,
	0.21459331069265467, 0.21393695610573193, 0.21328195677161735, 0.21262826955138034,
	0.21197583156096036, 0.21132456888100867, 0.21067440395118556, 0.21002526091405771,
	0.20937706891724397, 0.20872976377798852, 0.20808328851355426, 0.20743759317736901,
	0.20679263432393863, 0.20614837431396882, 0.20550478058570185, 0.2048618249605394,
	0.2042194830148743, 0.20357773352900585, 0.20293655801264027, 0.20229594030093362,
	0.20165586621282244, 0.20101632326298474, 0.20037730041926691, 0.19973878789829738,
	0.19910077699299922, 0.19846325992668837, 0.19782622972928587, 0.19718968013198451,
	0.1965536054772872, 0.19591800064191542, 0.19528286097050485, 0.19464818221837787,
	0.1940139605019725, 0.19338019225575848, 0.19274687419466183, 0.19211400328118641,
	0.19148157669655474, 0.19084959181529618, 0.19021804618280547, 0.1895869374954641,
	0.1889562635829839, 0.1883260223926809, 0.18769621197542746, 0.18706683047307499,
	0.18643787610715867, 0.18580934716873224, 0.185181242009191, 0.18455355903196952,
	0.18392629668500979, 0.18329945345391027, 0.18267302785567785, 0.18204701843301521,
	0.18142142374908232, 0.1807962423826811, 0.18017147292381222, 0.17954711396957057,
	0.17892316412033385, 0.17829962197621815, 0.17767648613377041, 0.17705375518286851,
	0.17643142770381104, 0.17580950226457276, 0.1751879774182068, 0.17456685170038094,
	0.17394612362702758, 0.17332579169209661, 0.17270585436540112, 0.17208631009053954,
	0.17146715728288761, 0.17084839432765159, 0.17023001957796829, 0.1696120313530575,
	0.16899442793640193, 0.16837720757395991, 0.167760368472405, 0.16714390879738064,
	0.16652782667176835, 0.16591212017396587, 0.16529678733616776, 0.16468182614264493,
	0.16406723452802227, 0.16345301037554499, 0.1628391515153369, 0.16222565572264053,
	0.1616125207160396, 0.1609997441556639, 0.16038732364136482, 0.15977525671086704,
	0.15916354083789191, 0.15855217343024552, 0.15794115182787488, 0.15733047330088495,
	0.15672013504751894, 0.15611013419209566, 0.15550046778290322, 0.15489113279004502,
	0.15428212610324141, 0.15367344452957957, 0.15306508479120801, 0.15245704352298312,
	0.15184931727005407, 0.15124190248539146, 0.15063479552725728, 0.15002799265661043,
	0.14942149003445171, 0.14881528371909805, 0.14820936966339524, 0.14760374371185783,
	0.14699840159773789, 0.1463933389400216, 0.14578855124035384, 0.14518403387988307,
	0.1445797821160304, 0.14397579107917588, 0.14337205576927084, 0.14276857105236376,
	0.14216533165703571, 0.14156233217076572, 0.14095956703619142, 0.14035703054729895,
	0.13975471684550528, 0.13915261991566891, 0.1385507335819921, 0.1379490515038406,
	0.13734756717146693, 0.13674627390162419, 0.13614516483312816, 0.13554423292228104,
	0.1349434709381658, 0.13434287145795121, 0.1337424268620043, 0.13314212932893843,
	0.13254197083055305, 0.1319419431266905, 0.13134203775997899, 0.13074224605049306,
	0.13014255909029607, 0.12954296773790577, 0.12894346261265732, 0.12834403408896586,
	0.12774467229050765, 0.12714536708429919, 0.12654610807469674, 0.12594688459729994,
	0.12534768571277891, 0.12474850020061506, 0.12414931655276691, 0.12355012296725956,
	0.122950907341705, 0.12235165726675944, 0.12175236001951466, 0.12115300255684056,
	0.12055357150867638, 0.1199540531712804, 0.11935443350044495, 0.11875469810468652,
	0.11815483223841601, 0.11755482079510587, 0.11695464830044992, 0.11635429890555204,
	0.11575375638012253, 0.11515300410572744, 0.11455202506908485, 0.11395080185543016,
	0.11334931664196586, 0.11274755119141569, 0.11214548684569757, 0.11154310451974074,
	0.11094038469546612, 0.1103373074159535, 0.10973385227982375, 0.1091299984358582,
	0.10852572457788874, 0.10792100893998742, 0.1073158292919891, 0.10671016293538046,
	0.106103986699598, 0.10549727693876894, 0.10489000952894187, 0.10428215986585219,
	0.1036737028632677, 0.10306461295196848, 0.10245486407941508, 0.10184442971015993,
	0.1012332828270668, 0.10062139593339832, 0.10000874105584209, 0.099395289748548221,
	0.09878101309824848, 0.098165881730541527, 0.097549865817425613, 0.096932935086163699,
	0.096315058829575029, 0.095696205917846888, 0.095076344811965169, 0.094455443578867593,
	0.09383346990842599, 0.093210391132366094, 0.092586174245242472, 0.091960785927581265,
	0.091334192571311451, 0.090706360307608591, 0.090077255037269988, 0.089446842463749079,
	0.088815088128973166, 0.08818195745206571, 0.08754741577109873, 0.086911428387991596,
	0.086273960616669754, 0.085634977834595213, 0.084994445537763572, 0.084352329399258422,
	0.083708595331440941, 0.083063209551832037, 0.08241613865272808, 0.081767349674571776,
	0.081116810183064728, 0.080464488349986249, 0.07981035303763967, 0.079154373886808377,
	0.078496521408058365, 0.07783676707616366, 0.077175083427372976, 0.076511444159167816,
	0.075845824232076434, 0.075178199973026022, 0.074508549179616371, 0.073836851224582514,
	0.073163087159601597, 0.072487239817454946, 0.071809293911417382, 0.071129236130577922,
	0.070447055229621913, 0.06976274211140944, 0.069076289900482785, 0.068387694005398666,
	0.067696952167550103, 0.067004064493876136, 0.066309033470578996, 0.065611863954675956,
	0.064912563139895046, 0.06421114049309104, 0.063507607657011078, 0.062801978314857038,
	0.062094268011708059, 0.06138449392744387, 0.06067267459536111, 0.059958829560196381,
	0.059242978968738612, 0.058525143085618382, 0.057805341726189716, 0.057083593597612954,
	0.056359915538280562, 0.055634321644521638, 0.054906822271965638, 0.054177422896938478,
	0.053446122820588561, 0.052712913694857824, 0.051977777844591205, 0.051240686353537519,
	0.050501596873120981, 0.049760451100852837, 0.049017171858976576, 0.048271659682012594,
	0.047523788792409115, 0.046773402304157143, 0.046020306442070141, 0.045264263495868512,
	0.044504983139226753, 0.043742111630326007, 0.04297521826879297, 0.042203778313367281,
	0.041427151370464446, 0.04064455406320646, 0.039855025621654223, 0.039057384968261569,
	0.038250178016262223, 0.03743161437537313, 0.036599493484281195, 0.035751120897536161,
	0.034883214192268967, 0.033991789867062638, 0.033071999308498433, 0.032117845055336602,
	0.031121741641322507, 0.03007424341483032, 0.028964424392849627, 0.027783255244325133,
	0.026476328264701737, 0.025005599793462112, 0.023375349101913075, 0.02157750950897153,
	0.019607750531524838, 0.017448029701355342, 0.014951319791203219, 0.011515706791931811,
	1.2755983140116858e-08, 0.0077260473561960204, 0.0091662476341932298, 0.0094977149486759043,
	0.0097024389745493846, 0.0099388560084156443, 0.010209241172302661, 0.01048937364667416,
	0.010761554311200952, 0.011028133042789219, 0.01126628302131933, 0.011453693060171011,
	0.011591646586057458, 0.011686979244309552, 0.011746950961116031, 0.011778517842017229,
	0.011788006414741982, 0.011780745327450538, 0.011760979381000961, 0.011731987505054128,
	0.011696265954651636, 0.011655702393074653, 0.011611717107957375, 0.011565370635182974,
	0.011517444250675744, 0.011468500403542052, 0.011418928775417184, 0.011368982049829888,
	0.011318804194616176, 0.011268453159964636, 0.011217919297040007, 0.011167140414270891,
	0.011116014136778858, 0.011064408068499157, 0.011012168143940532, 0.010959125477279253,
	0.010905101958458407, 0.010849914801857929, 0.010793380218482886, 0.010735316354761935,
	0.01067554561820294, 0.010613896491192305, 0.01055020491834748, 0.010484315339472588,
	0.010416081428896978, 0.010345366592437281, 0.010272044265171526, 0.010195998046383829,
	0.0101171217022719, 0.010035319062127302, 0.0099505038295683076, 0.0098625993269170192,
	0.0097715381878620902, 0.0096772620110522657, 0.0095797209851618756, 0.0094788734941862636,
	0.0093746857102201663, 0.0092671311797018572, 0.0091561904080302084, 0.0090418504465555466,
	0.0089241044851788558, 0.0088029514531483399, 0.0086783956300951152, 0.008550446268895678,
	0.0084191172315586926, 0.0082844266390116918, 0.0081463965353934624, 0.0080050525672299231,
	0.0078604236776842473, 0.0077125418159167619, 0.0075614416614615586, 0.0074071603634238417,
	0.0072497372942152694, 0.0070892138174807372, 0.0069256330698138071, 0.0067590397558204146,
	0.0065894799560581464, 0.0064170009473585284, 0.0062416510350258927, 0.0060634793963967454,
	0.0058825359352438012, 0.0056988711465091992, 0.0055125359908570664, 0.0053235817785422749,
	0.0051320600621075577, 0.0049380225374273069, 0.0047415209526359492, 0.0045426070244901293,
	0.0043413323617321302, 0.0041377483950378853, 0.0039319063131480802, 0.003723857004801134,
	0.0035136510061011777, 0.003301338452972227, 0.0030869690383655609, 0.0028705919739065362,
	0.0026522559556776937, 0.0024320091338577488, 0.0022098990859442656, 0.0019859727933078833,
	0.0017602766208369208, 0.0015328562994460155, 0.0013037569112355402, 0.0010730228771003731,
	0.00084069794660021971, 0.00060682518991191938, 0.00037144699169989624, 0.00013460504674509688,
	-0.00010365964281060865, -0.00034330676874416922, -0.00058429671668278527, -0.00082659056480572008,
	-0.0010701500814302505, -0.0013149377215853286, -0.0015609166226695343, -0.0018080505992855338,
	-0.0020563041373342231, -0.0023056423874472237, -0.0025560311578315619, -0.0028074369065918653,
	-0.0030598267335957435, -0.0033131683719378412, -0.0035674301790572329, -0.0038225811275580564,
	-0.0040785907957787424, -0.0043354293581518858, -0.0045930675753931083, -0.0048514767845565842,
	-0.0051106288889867868, -0.0053704963481990154, -0.0056310521677152177, -0.0058922698888790028,
	-0.0061541235786742856, -0.0064165878195669461, -0.0066796376993887773, -0.0069432488012801706,
	-0.0072073971937065655, -0.0074720594205629643, -0.0077372124913781034, -0.008002833871630902,
	-0.0082689014731732111, -0.0085353936448114096, -0.0088022891629901887, -0.009069567222635435,
	-0.0093372074281404208, -0.0096051897845033634, -0.0098734946886201522, -0.01014210292073405,
	-0.01041099563604617, -0.010680154356487673, -0.01094956096265505, -0.011219197685907603,
	-0.011489047100630317, -0.011759092116657835, -0.012029315971863196, -0.012299702224905571,
	-0.012570234748139897, -0.012840897720684986, -0.013111675621646295, -0.013382553223495521,
	-0.013653515585600351, -0.01392454804790587, -0.014195636224760369, -0.014466765998887373,
	-0.014737923515499771, -0.015009095176548755, -0.015280267635111294, -0.015551427789907936,
	-0.015822562779952858, -0.016093659979324788, -0.01636470699206366, -0.016635691647178156,
	-0.016906601993793097, -0.017177426296381335, -0.017448153030112826, -0.017718770876321205,
	-0.017989268718053713, -0.018259635635758872, -0.018529860903007848, -0.018799933982363848,
	-0.019069844521318196, -0.019339582348313528, -0.019609137468855033, -0.019878500061695874,
	-0.020147660475105762, -0.02041660922320887, -0.020685336982392756, -0.020953834587788312,
	-0.02122209302980993, -0.021490103450759614, -0.021757857141488399, -0.022025345538113694,
	-0.022292560218788327, -0.022559492900519212, -0.022826135436030355, -0.02309247981067129,
	-0.023358518139363276, -0.023624242663581981, -0.023889645748374436, -0.02415471987940469,
	-0.024419457660026379, -0.024683851808378211, -0.024947895154498721, -0.025211580637456259,
	-0.025474901302491332, -0.025737850298166422, -0.026000420873519323, -0.026262606375216112,
	-0.02652440024469788, -0.026785796015319389, -0.027046787309470514, -0.027307367835678518,
	-0.027567531385684359, -0.027827271831486543, -0.028086583122346971, -0.028345459281751969,
	-0.028603894404320325, -0.028861882652651501, -0.029119418254106223, -0.02937649549750803,
	-0.02963310872975905, -0.029889252352357752, -0.030144920817807789, -0.030400108625905864,
	-0.030654810319894848, -0.030909020482468241, -0.031162733731610291, -0.031415944716253287,
	-0.031668648111722757, -0.031920838615017752, -0.032172510939741855, -0.032423659810865188,
	-0.032674279959143238, -0.032924366115219914, -0.033173913003371747, -0.03342291533485782,
	-0.033671367800834316, -0.033919265064789754, -0.034166601754452332, -0.034413372453112594,
	-0.034659571690303072, -0.034905193931764458, -0.035150233568625518, -0.035394684905708622,
	-0.035638542148869544, -0.03588179939126198, -0.036124450598409921, -0.03636648959195081,
	-0.036607910031898921, -0.036848705397255731, -0.037088868964772946, -0.037328393785646265,
	-0.037567272659886186, -0.037805498108080093, -0.038043062340211771, -0.038279957221163549,
	-0.038516174232462466, -0.038751704429768337, -0.038986538395522553, -0.039220666186082602,
	-0.039454077272555878, -0.039686760474418478, -0.039918703884844225, -0.040149894786487318,
	-0.040380319556235521, -0.040609963557184624, -0.040838811015765517, -0.041066844881565673,
	-0.041294046666923712, -0.041520396262816152, -0.041745871726880233, -0.041970449038609595,
	-0.042194101815794235, -0.042416800985129566, -0.042638514398517062, -0.042859206385368269,
	-0.04307883722854762, -0.043297362551114868, -0.043514732597836267, -0.043730891394554425,
	-0.04394577576747704, -0.044159314205402839, -0.044371425552177809, -0.044582017526982293,
	-0.044790985090787182, -0.044998208715422698, -0.04520355267768849, -0.045406863609685384,
	-0.04560796970693181, -0.0458066812463475, -0.046002793401831318, -0.046196092727446292,
	-0.046386368972242693, -0.0465734338008367, -0.046757147051597135, -0.046937448909778391,
	-0.047114392855099822, -0.04728817061987086, -0.047459118803631552, -0.047627698882438459,
	-0.047794447856092978, -0.047959904525177718, -0.04812452604144813, -0.048288618798793675,
	-0.048452309111967823, -0.048615564894930512, -0.048778255352731718, -0.048940219671249202,
	-0.049101319261156302, -0.0492614641082973, -0.049420617492305315, -0.049578788091241797,
	-0.049736016890166768, -0.049892362842490753, -0.050047888217405134, -0.050202642785681456,
	-0.050356646036662421, -0.050509869042191707, -0.050662221708689691, -0.050813551672721481,
	-0.050963644558295072, -0.051112183353266519, -0.051258717159642649, -0.051403278130856357,
	-0.051548342638557121, -0.051692265998117312, -0.051819131694274129, -0.051967599837171113,
	-0.052130211733645578, -0.052277803389973468, -0.05241609357136421, -0.052559747967443768,
	-0.052698274434731976, -0.05282872088213518, -0.052946727066615525, -0.053064949926874883,
	-0.053188801676226249, -0.053303356858701884, -0.053403489022254585, -0.053491685160450921,
	-0.05358629963677268, -0.05365107866305014, -0.053651259845355764, -0.054567119362731988,
	-0.05504319004188965, -0.055481338508783715, -0.055812023710041285, -0.056118696005709269,
	-0.056412253960732572, -0.056693770466375075, -0.056967910163048273, -0.057235619688040487,
	-0.057497085222054566, -0.057753042062097942, -0.058004428877205381, -0.05825152924646726,
	-0.058494444616330583, -0.058733346489900674, -0.058968442241365215, -0.059199927579965263,
	-0.059427972348125198, -0.059652722658409846, -0.059874307989058337, -0.060092849585016157,
	-0.060308468303746574, -0.060521289986008184, -0.06073144707747738, -0.060939076668597304,
	-0.061144316395422449, -0.061347300043544432, -0.061548154275807267, -0.06174699713690758,
	-0.061943938261056909, -0.062139080198261011, -0.062332520040362036, -0.062524350563731956,
	-0.062714660353312676, -0.062903532745053919, -0.063091043813332637, -0.063277259917436351,
	-0.063462235427359515, -0.063646011199482738, -0.063828614268035058, -0.064010059099446667,
	-0.064190350538275681, -0.064369488171535483, -0.064547471342350005, -0.064724303704263603,
	-0.064899996245430358, -0.065074568145123524, -0.065248045455236908, -0.065420458153376437,
	-0.065591836413901053, -0.065762206969162823, -0.06593159026043488, -0.06609999879359553,
	-0.066267436796109261, -0.06643390099574259, -0.066599382168313154, -0.066763867050054063,
	-0.066927340255344733, -0.067089785939044022, -0.067251189055976712, -0.067411536174544984,
	-0.067570815885441171, -0.067729018904678889, -0.067886137999419241, -0.068042167863920061,
	-0.068197105043798362, -0.068350947958106603, -0.068503697014583947, -0.068655354769897134,
	-0.068805926065827777, -0.068955418077551955, -0.069103840235261269, -0.069251204013428214,
	-0.069397522610992329, -0.069542810563288537, -0.069687083330748925, -0.06983035690372566,
	-0.069972647451381029, -0.070113971030215494, -0.070254343357132515, -0.070393779644264159,
	-0.070532294488181102, -0.070669901804023535, -0.070806614794773612, -0.070942445946639801,
	-0.071077407042805005, -0.071211509189237465, -0.071344762847655216, -0.071477177871969277,
	-0.071608763545552234, -0.071739528617501061, -0.071869481336694491, -0.071998629482920379,
	-0.072126980394691897, -0.072254540993620886, -0.072381317805377265, -0.072507316977379263,
	-0.072632544293396467, -0.07275700518536253, -0.072880704742556632, -0.07300364771847237,
	-0.073125838535565285, -0.073247281288091076, -0.073367979743211742, -0.073487937340515938,
	-0.073607157190073672, -0.073725642069108463, -0.073843394417343527, -0.073960416331048051,
	-0.074076709555777845, -0.074192275477778874, -0.074307115113993197, -0.074421229100579453,
	-0.07453461767983581, -0.074647280685383205, -0.074759217525455043, -0.074870427164088066,
	-0.074980908100020977, -0.075090658343052744, -0.075199675387613865, -0.075307956183261776,
	-0.075415497101813389, -0.075522293900791918, -0.075628341682874398, -0.075733634850981543,
	-0.075838167058697836, -0.075941931155678086, -0.076044919127737629, -0.076147122031360773,
	-0.076248529922422315, -0.076349131779015894, -0.076448915418420665, -0.076547867408434236,
	-0.076645972973568718, -0.076743215896971417, -0.076839578419424001, -0.076935041137426594,
	-0.077029582903227894, -0.077123180730789262, -0.077215809713123834, -0.077307442958324424,
	-0.077398051554001951, -0.077487604572870974, -0.077576069136076259, -0.077663410555576753,
	-0.077749592582768631, -0.077834577797608634, -0.07791832818092892, -0.078000805922439298,
	-0.078081974527963352, -0.078161800301388695, -0.078240254288888297, -0.078317314783930364,
	-0.078392970499462603, -0.078467224515595166, -0.078540099103343794, -0.078611641502865467,
	-0.078681930692970817, -0.078751085122149136, -0.078819271273325969, -0.078886712789201494,
	-0.078953699631644739, -0.079020596148997424, -0.079087845100016041, -0.079155958583459973,
	-0.079225466669091318, -0.079296733317199428, -0.079369392040895673, -0.079440785599075234,
	-0.0795026245116916, -0.07955560857722134, -0.079609293447342633, -0.079669269447519467,
	-0.07973480260287924, -0.079804086236212615, -0.079875574369849336, -0.079948156041485752,
	-0.080021060422177173, -0.080093751301621663, -0.080165853736192144, -0.080237106721636323,
	-0.080307331983985847, -0.080376412384906282, -0.080444276283799257, -0.080510885839511936,
	-0.08057622809329576, -0.080640308117018791, -0.080703143745249964, -0.080764761542812882,
	-0.080825193742183776, -0.080884475942028564, -0.080942645400629773, -0.080999739791321079,
	-0.081055796313976747, -0.081110851078522464, -0.081164938694269884, -0.081218092013304752,
	-0.081270341987741176, -0.081321717609874916, -0.081372245911572549, -0.081421952004902293,
	-0.081470859150541572, -0.081518988843855569, -0.081566360911240601, -0.081612993611333451,
	-0.081658903737222913, -0.081704106716961572, -0.081748616710546368, -0.081792446702179833,
	-0.081835608587101566, -0.081878113252628809, -0.081919970653288737, -0.081961189880107324,
	-0.082001779224235558, -0.082041746235174864, -0.082081097773913744, -0.082119840061314425,
	-0.082157978722097763, -0.082195518824781197, -0.082232464917895612, -0.082268821062830025,
	-0.082304590863591265, -0.082339777493775496, -0.082374383721011885, -0.082408411929122558,
	-0.082441864138208421, -0.082474742022855943, -0.082507046928621666, -0.082538779886944413,
	-0.082569941628581903, -0.082600532595664578, -0.082630552952416836, -0.082660002594571819,
	-0.082688881157469779, -0.082717188022804145, -0.082744922323935821, -0.082772082949663109,
	-0.082798668546293863, -0.082824677517820564, -0.082850108023951985, -0.082874957975704586,
	-0.082899225028200199, -0.082922906570256291, -0.082945999710292415, -0.082968501258002578,
	-0.082990407701189012, -0.083011715177055675, -0.083032419437213817, -0.083052515805576377,
	-0.083071999128272692, -0.083090863714689961, -0.083109103268763529, -0.083126710809716342,
	-0.083143678581615824, -0.083159997951428435, -0.083175659295744164, -0.083190651877113997,
	-0.083204963712057864, -0.083218581434380698, -0.083231490159565616, -0.083243673358782536,
	-0.083255112754445776, -0.083265788253125236, -0.083275677935544259, -0.083284758126584063,
	-0.083293003569391177, -0.08330038772513744, -0.083306883211881649, -0.083312462380928654,
	-0.083317098007512122, -0.083320764047318627, -0.083323436387769401, -0.083325093511393111,
	-0.083325716995688748, -0.083325291802112122, -0.083323806350559193, -0.083321252421694178,
	-0.08331762496179923, -0.083312921872310028, -0.083307143847765858, -0.083300294291193219,
	-0.083292379300924174, -0.083283407703296217, -0.083273391111432768, -0.083262344021929988,
	-0.083250284008611994, -0.083237232114123497, -0.083223213544554323, -0.083208258704955351,
	-0.083192404454717428, -0.083175695233673047, -0.083158183494915328, -0.083139928798623267,
	-0.08312099506031688, -0.083101445798882165, -0.083081337700125199, -0.083060713285403681,
	-0.083039593851220159, -0.083017974022757068, -0.08299581914234358, -0.082973066244446309,
	-0.082949628607079384, -0.082925402997374262, -0.082900278043409117, -0.082874141978900917,
	-0.082846888443592823, -0.082818419855536091, -0.082788648660729394, -0.082757497191820753,
	-0.082724896922567487, -0.082690787764874846, -0.082655117850222767, -0.082617843959365556,
	-0.082578932352413995, -0.082538359246940612, -0.082496109825328387, -0.082452174725432176,
	-0.082406543575529956, -0.082359196041667235, -0.082310091686551706, -0.082259160371066856,
	-0.082206294755117704, -0.08215134574713337, -0.082094120987308561, -0.082034386193818698,
	-0.081971869991187024, -0.08190627682362446, -0.081837325434116676, -0.08176485847879035,
	-0.081689080960094196, -0.081610649682061359, -0.081529535102324593, -0.081443301846064575,
	-0.081350049898962051, -0.081250875713107962, -0.081140085464358011, -0.081011790216821714,
	-0.080806459755848117, -0.080568105568752615, -0.080095690980257137, -0.080251326903846662,
	-0.080341789447104517, -0.080409971410756079, -0.08048648586494303, -0.080548060754451159,
	-0.080598265236891384, -0.080640949222246405, -0.080682366360484703, -0.080717947761072953,
	-0.08074895905975997, -0.080778187571043686, -0.080800413358880982, -0.080819031057840232,
	-0.080837512432028261, -0.08085013566478351, -0.080864090999054838, -0.080879869234103369,
	-0.080887842437097124, -0.080902536938774777, -0.0809201542587831, -0.080936507720042933,
	-0.080950851053622805, -0.080963375345047106, -0.080974281125340095, -0.080983684315385884,
	-0.080991658724027513, -0.080998257651590994, -0.081003520171839816, -0.081007475986980298,
	-0.081010151616312434, -0.081011576526098417, -0.081011787536580671, -0.081010830085234742,
	-0.081008755048599349, -0.081005610355461208, -0.08100142792195926, -0.080996207990013364,
	-0.080989903744661057, -0.08098240902564767, -0.080973552262254639, -0.080963100722503567,
	-0.080950778387802513, -0.080936296396127219, -0.080919389566835448, -0.08089985021158172,
	-0.080877551949759652, -0.080852459419301179, -0.080824623295026848, -0.080794163622640067,
	-0.080761247095361532, -0.080726064247408982, -0.080688810739861935, -0.080649674384584466,
	-0.080608827597514518, -0.080566424028618897, -0.080522597961249984, -0.080477465315273819,
	-0.080431125434097833, -0.080383663141724779, -0.080335150779294512, -0.080285650075995987,
	-0.080235213796256963, -0.080183887153286421, -0.080131709003267548, -0.080078712844846911,
	-0.080024927651356326, -0.079970378562166156, -0.079915087456841755, -0.079859073432498123,
	-0.079802353201511286, -0.079744941423786186, -0.079686850985302135, -0.079628093232401345,
	-0.07956867816964272, -0.079508614627515212, -0.079447910405157682, -0.079386572392278795,
	-0.079324606673703321, -0.079262018619347799, -0.079198812961931889, -0.079134993864325612,
	-0.079070564978101221, -0.079005529494597493, -0.078939890189579934, -0.078873649462409073,
	-0.078806809370477585, -0.078739371659560117, -0.078671337790620799, -0.078602708963537743,
	-0.078533486138139499, -0.078463670052888665, -0.07839326124150095, -0.078322260047747685,
	-0.078250666638654778, -0.07817848101628469, -0.078105703028260753, -0.078032332377173719,
	-0.077958368628993704, -0.077883811220592514, -0.077808659466471364, -0.077732912564775075,
	-0.077656569602665995, -0.077579629561120966, -0.077502091319207683, -0.077423953657891578,
	-0.077345215263415548, -0.077265874730294129, -0.077185930563955632, -0.07710538118306437,
	-0.077024224921549977, -0.076942460030369628, -0.076860084679024984, -0.07677709695685335,
	-0.07669349487411134, -0.076609276362866213, -0.076524439277714545, -0.076438981396325101,
	-0.076352900419841038, -0.076266193973131738, -0.07617885960491344, -0.076090894787742946,
	-0.076002296917894605, -0.075913063315124082, -0.075823191222327446, -0.075732677805098528,
	-0.075641520151191119, -0.075549715269888143, -0.075457260091282743, -0.0753641514654739,
	-0.075270386161678887, -0.075175960867265412, -0.075080872186705158, -0.074985116640450586,
	-0.074888690663735519, -0.074791590605301717, -0.074693812726051509, -0.074595353197627029,
	-0.074496208100916714, -0.074396373424489223, -0.074295845062954127, -0.074194618815249899,
	-0.074092690382858456, -0.073990055367945395, -0.073886709271426057, -0.073782647490955228,
	-0.073677865318840879, -0.073572357939880428, -0.073466120429117113, -0.073359147749517337,
	-0.073251434749565636, -0.07314297616077646, -0.073033766595121258, -0.07292380054236923,
	-0.072813072367339221, -0.072701576307061561, -0.0725893064678481, -0.072476256822267507,
	-0.072362421206024, -0.072247793314738906, -0.072132366700629849, -0.072016134769088691,
	-0.071899090775152677, -0.07178122781986955, -0.071662538846551924, -0.071543016636919032,
	-0.0714226538071253, -0.07130144280366868, -0.071179375899187186, -0.071056445188118794,
	-0.070932642582252667, -0.070807959806144211, -0.070682388392403359, -0.070555919676851098,
	-0.070428544793540854, -0.070300254669644832, -0.070171040020200498, -0.070040891342716419,
	-0.069909798911634832, -0.069777752772649193, -0.069644742736873697, -0.069510758374864798,
	-0.069375789010490282, -0.069239823714647153, -0.069102851298824167, -0.068964860308509471,
	-0.068825839016441556, -0.068685775415701977, -0.068544657212650281, -0.068402471819699273,
	-0.068259206347931686, -0.06811484759955648, -0.067969382060207223, -0.067822795891081297,
	-0.067675074920921882, -0.067526204637844117, -0.067376170181006514, -0.067224956332130797,
	-0.067072547506872401, -0.066918927746044771, -0.066764080706701812, -0.066607989653082969,
	-0.066450637447425034, -0.06629200654064886, -0.06613207896292575, -0.065970836314127923,
	-0.065808259754183696, -0.065644329993329809, -0.065479027282283955, -0.065312331402343687,
	-0.065144221655426882, -0.064974676854065661, -0.064803675311370934, -0.064631194830983812,
	-0.064457212697032737, -0.064281705664116312, -0.064104649947334266, -0.063926021212390063,
	-0.06374579456579188, -0.063563944545179579, -0.063380445109808906, -0.063195269631225626,
	-0.063008390884165558, -0.062819781037719125, -0.062629411646801941, -0.062437253643976474,
	-0.062243277331672453, -0.062047452374858252, -0.061849747794218653, -0.061650131959897728,
	-0.0614485725858719, -0.061245036725019533, -0.061039490764961152, -0.060831900424747141,
	-0.060622230752475498, -0.060410446123927965, -0.060196510242317876, -0.059980386139248908,
	-0.059762036176990455, -0.059541422052180243, -0.059318504801073535, -0.05909324480646224,
	-0.058865601806395662, -0.058635534904841517, -0.058403002584432172, -0.05816796272144855,
	-0.05793037260320108, -0.057690188947974855, -0.0574473679277126, -0.057201865193615295,
	-0.05695363590484908, -0.056702634760550673, -0.056448816035331702, -0.056192133618486233,
	-0.055932541057110589, -0.055669991603349483, -0.055404438265982701, -0.055135833866570116,
	-0.054864131100371763, -0.054589282602257774, -0.054311241017817979, -0.054029959079877017,
	-0.0537453896906082, -0.053457486009429782, -0.053166201546848875, -0.052871490264399849,
	-0.052573306680797405, -0.052271605984395057, -0.051966344152002568, -0.051657478074074566,
	-0.051344965686228705, -0.051028766106995652, -0.050708839781633645, -0.050385148631759698,
	-0.050057656210463236, -0.049726327862458737, -0.04939113088872283, -0.049052034714923039,
	-0.048709011062798666, -0.048362034123481341, -0.048011080731558006, -0.047656130538458227,
	-0.047297166183514844, -0.046934173460776524, -0.046567141479350524, -0.046196062814721849,
	-0.045820933648116714, -0.045441753890560835, -0.045058527287810408, -0.044671261501799543,
	-0.044279968163648868, -0.04388466289259435, -0.043485365274412303, -0.043082098792013419,
	-0.042674890699833788, -0.042263771832417536, -0.041848776336138531, -0.041429941311268897,
	-0.041007306349507361, -0.040580912949530923, -0.040150803789985, -0.039717021835430327,
	-0.039279609245877686, -0.038838606054373344, -0.038394048569272761, -0.03794596744783621,
	-0.037494385374928975, -0.037039314264054664, -0.036580751876505384, -0.03611867772660203,
	-0.035653048104817335, -0.035183790003453258, -0.034710793668155049, -0.034233903418579438,
	-0.033752906277626338, -0.033267517814150681, -0.032777364431262522, -0.032281961112826829,
	-0.031780683367029702, -0.031272731773875878, -0.030757087157534651, -0.030232453982757656,
	-0.029697189148839016, -0.02914921293875699, -0.028585898335765685, -0.028003933533877871,
	-0.027399147940333674, -0.026766278727927625, -0.026098625039223375, -0.025387502138362893,
	-0.024621497806811388, -0.023786031776280563, -0.022863269893672704, -0.021827834107045894,
	-0.020656172849558407, -0.019409676472490825, -0.018066199236131415, -0.016626682436533976,
	-0.015102911491669221, -0.013486407209535626, -0.011608555831013095, -0.0086550065414360364,
	-1.2755983140116857e-08, -0.010594703358651869, -0.012512155716800172, -0.013418375884067907,
	-0.014126288366111992, -0.014771628011141465, -0.015370006275144584, -0.015916814368669607,
	-0.016408090175351567, -0.016850276288469135, -0.017265904321240023, -0.017660982159326589,
	-0.018028663758638375, -0.018370116165957386, -0.018687571293029726, -0.018984259072874394,
	-0.019263922808307295, -0.019530072972801269, -0.019785653384299537, -0.020033011160705966,
	-0.02027398127559845, -0.020509989104222158, -0.020742138619140295, -0.02097128097319086,
	-0.021198066501802046, -0.021422984407126578, -0.02164639360946484, -0.02186854722910337,
	-0.022089612359771409, -0.022309686253186013, -0.022528809688070452, -0.022746978078361249,
	-0.022964150734757095, -0.023180258600025525, -0.023395210712973284, -0.023608899607966884,
	-0.023821205820184727, -0.024032001637806659, -0.024241154218956958, -0.024448528172059864,
	-0.02465398768242669, -0.02485739825474648, -0.025058628130186666, -0.025257549427665189,
	-0.025454039051215408, -0.025647979398960893, -0.02583925890387433, -0.026027772431992655,
	-0.026213421559991644, -0.026396114750844905, -0.026575767443608508, -0.026752302071100357,
	-0.026925648017321613, -0.02709574152481635, -0.027262525560769982, -0.027425949649439202,
	-0.027585969677468635, -0.027742547677759639, -0.027895651596777191, -0.028045255049509037,
	-0.028191337065706087, -0.028333881830519842, -0.028472878422202048, -0.028608320549146408,
	-0.028740206288198955, -0.02886853782586813, -0.028993321203798057, -0.029114566069632954,
	-0.029232285434200877, -0.029346495435760955, -0.029457215111904883, -0.029564466179564243,
	-0.029668272823456587, -0.029768661493198362, -0.029865660709225663, -0.029959300877581297,
	-0.030049614113566752, -0.030136634074195309, -0.030220395799336958, -0.030300935561407217,
	-0.030378290723415587, -0.030452499605163549, -0.030523601357361877, -0.030591635843415389,
	-0.030656643528614771, -0.030718665376463245, -0.030777742751858343, -0.030833917330848771,
	-0.030887231016681876, -0.030937725861858095, -0.030985443995913624, -0.031030427558653303,
	-0.031072718638561397, -0.031112359216126203, -0.031149391111816947, -0.031183855938462492,
	-0.031215795057787488, -0.031245249540869786, -0.031272260132291785, -0.031296867217768122,
	-0.031319110795037249, -0.031339030447818605, -0.031356665322640816, -0.031372054108357542,
	-0.031385235018176486, -0.031396245774033583, -0.031405123593153221, -0.031411905176645237,
	-0.031416626699993296, -0.031419323805300242, -0.031420031595162004, -0.03141878462804687,
	-0.031415616915066683, -0.031410561918030946, -0.031403652548680445, -0.031394921169005101,
	-0.031384399592554638, -0.031372119086655159, -0.031358110375453607, -0.031342403643711915,
	-0.031325028541280733, -0.031306014188187417, -0.031285389180272981, -0.03126318159532207,
	-0.03123941899962978, -0.031214128454954332, -0.03118733652580848, -0.031159069287044195,
	-0.031129352331689189, -0.031098210778997271, -0.031065669282675835, -0.031031752039256975,
	-0.030996482796582264, -0.030959884862371136, -0.030921981112847434, -0.030882794001399309,
	-0.03084234556724955, -0.030800657444116475, -0.030757750868845871, -0.030713646689993889,
	-0.030668365376362, -0.030621927025426838, -0.030574351371710891, -0.030525657795036767,
	-0.030475865328672854, -0.030424992667358677, -0.030373058175201424, -0.03032007989343578,
	-0.030266075548041827, -0.03021106255721507, -0.030155058038683936, -0.030098078816871057,
	-0.030040141429895993, -0.029981262136415464, -0.029921456922301682, -0.029860741507155234,
	-0.029799131350653908, -0.029736641658736736, -0.029673287389622969, -0.029609083259668642,
	-0.029544043749060177, -0.029478183107348694, -0.029411515358824376, -0.029344054307736591,
	-0.029275813543360438, -0.029206806444911859, -0.029137046186317305, -0.029066545740838508,
	-0.028995317885559202, -0.028923375205733293, -0.028850730099002873, -0.028777394779483042,
	-0.028703381281736367, -0.028628701464612993, -0.028553367014980111, -0.028477389451347052,
	-0.028400780127388538, -0.028323550235328107, -0.028245710809297848, -0.028167272728540582,
	-0.028088246720557888, -0.028008643364168789, -0.027928473092494157, -0.027847746195867915,
	-0.027766472824684158, -0.027684662992181371, -0.027602326577170835, -0.027519473326716219,
	-0.027436112858764815, -0.027352254664740474, -0.027267908112100656, -0.027183082446864067,
	-0.027097786796114985, -0.027012030170487759, -0.026925821466639067, -0.026839169469713434,
	-0.026752082855806568, -0.026664570194434037, -0.026576639951010842, -0.026488300489347933,
	-0.026399560074173007, -0.026310426873681264, -0.026220908962124655, -0.026131014322445502,
	-0.026040750848963186, -0.025950126350121377, -0.025859148551304542, -0.025767825097732538,
	-0.025676163557441782, -0.025584171424365736, -0.025491856121521207, -0.025399225004315056,
	-0.025306285363981423, -0.025213044431162988, -0.025119509379650361, -0.025025687330292916,
	-0.024931585355098335, -0.024837210481537361, -0.024742569697072045, -0.024647669953927365,
	-0.024552518174128412, -0.024457121254825694, -0.024361486073934346, -0.024265619496114908,
	-0.024169528379125737, -0.024073219580579737, -0.023976699965141637, -0.023879976412204362,
	-0.023783055824107991, -0.023685945134837644, -0.023588651319509997, -0.02349118140438242,
	-0.023393542477675052, -0.02329574170118948, -0.02319778632281318, -0.023099683689994033,
	-0.023001441264278409, -0.022903066637015464, -0.022804567546343718, -0.022705951895585934,
	-0.022607227773196122, -0.022508403474416003, -0.022409487524819662, -0.022310488705943855,
	-0.022211416083227763, -0.022112279036512097, -0.022013087293380862, -0.021913850965663756,
	-0.021814580589460099, -0.021715287169093503, -0.02161598222546194, -0.021516677849313725,
	-0.021417386760053614, -0.021318122370774382, -0.021218898860308633, -0.021119731253220073,
	-0.02102063550879385, -0.02092162862025505, -0.020822728725644186, -0.020723955232014049,
	-0.020625328954898419, -0.020526872275338219, -0.020428609317158574, -0.020330566147679072,
	-0.0202327710056278, -0.020135254560744512, -0.020038050210422532, -0.019941194419790958,
	-0.019844727112919649, -0.019748692124386538, -0.019653137722351603, -0.019558117216594929,
	-0.019463689667791655, -0.019369920717706341, -0.019276883564199893, -0.01918466010912143,
	-0.019093342314789458, -0.019003033808377347, -0.018913851783385026, -0.018825929253166201,
	-0.018739417718331278, -0.018654490313210339, -0.018571345493336177, -0.018490211309538224,
	-0.018411350273743136, -0.01833506473894592, -0.01826170256274753, -0.018191662558321303,
	-0.018125398801867691, -0.018063422197635171, -0.018006296759624577, -0.017954626911395023,
	-0.017909031035609049, -0.017870096273960974, -0.017838311489450608, -0.017813980830056624,
	-0.017797129795946276, -0.017787426385520711, -0.017784145746881003, -0.017786202180013814,
	-0.017792257146055909, -0.017800890527661557, -0.017810798512957814, -0.017820961370425867,
	-0.017830724437688621, -0.017839769968360675, -0.017848010330285168, -0.017855463630395373,
	-0.017862160271712422, -0.01786809457945826, -0.017873211693055387, -0.017877415504368891,
	-0.017880588475522072, -0.017882619231111358, -0.017883436657592566, -0.017883050215607228,
	-0.017881594342527941, -0.017879368567293653, -0.017876856117969266, -0.017874705415152337,
	-0.017873694635231002, -0.017874718458092447, -0.017878397955532303, -0.017882130399366338,
	-0.01787291031527127, -0.017849838555399174, -0.017877826301695873, -0.017872633678567576,
	-0.017839981718004022, -0.017832022890717805, -0.017830244060571272, -0.017818009138037622,
	-0.017808738376221697, -0.017792491940817473, -0.017790146549124093, -0.017784765272642739,
	-0.017750678547122551, -0.017716473193043029, -0.017681813229959549, -0.01763777783192761,
	-0.017601747853341104, -0.017567805212594878, -0.017468848754970619, -0.014793168740581857,
	-0.014024567706094348, -0.013333751691352706, -0.012899001908932414, -0.012518997284115549,
	-0.012171118342998721, -0.011846687901602471, -0.011540214735839658, -0.011245544976927735,
	-0.010963792835350983, -0.010693582457734118, -0.010431498336054721, -0.010178539109668755,
	-0.0099350167611485865, -0.0096999616413745663, -0.0094723578252145103, -0.0092516269787108127,
	-0.0090375792644606205, -0.0088302175095303012, -0.0086295546545408879, -0.0084354900953183334,
	-0.0082477550562494589, -0.00806592572665135, -0.0078894896255995092, -0.0077179357414938381,
	-0.0075508331367336052, -0.0073878715912020993, -0.0072288566822061463, -0.007073669820528203,
	-0.0069222129138514932, -0.0067743564710119079, -0.006629903692793873, -0.0064885765350512952,
	-0.0063500251139508457, -0.0062138585744227343, -0.0060796921260577209, -0.0059472006892754142,
	-0.0058161656957314558, -0.0056865007530197123, -0.0055582463158106842, -0.0054315326833746722,
	-0.0053065211120731856, -0.0051833402896587048, -0.0050620370213615403, -0.0049425552462919837,
	-0.0048247481463208237, -0.0047084174368422519, -0.0045933657946789089, -0.0044794456574903862,
	-0.0043665909134944884, -0.0042548253567493248, -0.0041442497967699938, -0.0040350152482694825,
	-0.0039272912911092524, -0.0038212370983114687, -0.0037169795069069327, -0.003614599479661381,
	-0.0035141262388307536, -0.0034155373682829425, -0.0033187630043855737, -0.0032236925125953254,
	-0.003130182489900287, -0.0030380653596633707, -0.0029471581354789879, -0.0028572710868979318,
	-0.0027682160550047742, -0.0026798140944371048, -0.0025919020403194887, -0.0025043375897802907,
	-0.0024170025884545725, -0.002329804409708773, -0.0022426755510419737, -0.0021555717770817546,
	-0.0020684692593958835, -0.0019813611857799557, -0.001894254251001707, -0.0018071653371781208,
	-0.0017201185755967535, -0.0016331428809010684, -0.0015462699732672358, -0.0014595328562379451,
	-0.0013729646927251183, -0.0012865980128514269, -0.0012004641886345089, -0.0011145931172492852,
	-0.0010290130634899029, -0.00094375062116326442, -0.00085883076145281279, -0.00077427694339341955,
	-0.00069011126741437784, -0.00060635465754654773, -0.00052302706151487514, -0.00044014766074666224,
	-0.00035773508447640599, -0.00027580762377514383, -0.00019438344258988129, -0.0001134807838689025,
	-3.3118169355906513e-05, 4.6685407038671246e-05, 0.00012591029332843448, 0.00020453600015371264,
	0.00028254102801505195, 0.00035990270033734481, 0.00043659700154797973, 0.00051259841920285002,
	0.00058787978906141639, 0.00066241214189572068, 0.00073616455071118367, 0.00080910397695635786,
	0.00088119511420221093, 0.00095240022767069084, 0.0010226789878978388, 0.0010919882967107431,
	0.0011602821035872029, 0.0012275112104124279, 0.0012936230623285911, 0.0013585615226507284,
	0.0014222666292066286, 0.0014846743297228311, 0.001545716193498542, 0.0016053190966747581,
	0.0016634048780835454, 0.0017198899627637895, 0.0017746849498343853, 0.0018276941618873071,
	0.0018788151524025951, 0.0019279381683056165, 0.0019749455646847292, 0.0020197111690864402,
	0.0020620995933023278, 0.002101965491323245, 0.0021391527632334591, 0.0021734937063519269,
	0.002204808117038545, 0.0022329023494316739, 0.0022575683411836453, 0.0022785826212767522,
	0.0022957053215557086, 0.0023086792220994821, 0.0023172288714581228, 0.0023210598366708523,
	0.0023198581553376366, 0.0023132900842047959, 0.0023010022650664075, 0.002282622461955831,
	0.0022577610622637949, 0.0022260135798183337, 0.0021869644489322117, 0.0021401924529970643,
	0.0020852781850311426, 0.002021813982762547, 0.0019494168039514296, 0.0018677444871314647,
	0.0017765157451290698, 0.0016755340124244935, 0.0015647148359799444, 0.0014441157479501306,
	0.0013139663136457382, 0.0011746940345609045, 0.0010269385436627761, 0.00087154123526084258,
	0.00070948861170012348, 0.00054177266080857414, 0.00036910821737675884, 0.00019142621371762028,
	7.1371469338602709e-06, -0.00018719898532278072, -0.00039338831319162064, -0.00059419501110690928,
	0.013400428129545771, 0.013245018534987663, 0.012966920443137324, 0.012696027060525658,
	0.012458712524036396, 0.012249185521602033, 0.012058295404969228, 0.011879802847592243,
	0.011710262454471055, 0.011548001339627986, 0.011392335750667643, 0.011243088799216858,
	0.011100312322678147, 0.010964132088778744, 0.010834665694184082, 0.010711983030015618,
	0.010596091356480781, 0.010486934155640712, 0.01038439719572426, 0.010288317856191755,
	0.010198495393838276, 0.010114700851880336, 0.010036685948962452, 0.0099641906716778708,
	0.0098969495212390193, 0.0098346964903021118, 0.0097771689077516283, 0.009724110312422294,
	0.0096752725174681937, 0.0096304170157183715, 0.0095893158590456256, 0.0095517521264936005,
	0.0095175200761007557, 0.0094864250596116938, 0.0094582832633558923, 0.0094329213260324514,
	0.0094101758733018178, 0.0093898930001982267, 0.0093719277251456349, 0.0093561434335383432,
	0.0093424113242118068, 0.0093306098684671282, 0.009320624288441156, 0.0093123460593875478,
	0.0093056724387164096, 0.0093005060233300359, 0.0092967543358005982, 0.0092943294391968443,
	0.0092931475798316322, 0.0092931288566946418, 0.0092941969164275391, 0.0092962786717575973,
	0.0092993040420650472, 0.0093032057139541737, 0.0093079189200523729, 0.009313381233930669,
	0.0093195323792817555, 0.0093263140511881826, 0.0093336697476469489, 0.0093415446089066632,
	0.0093498852628495204, 0.0093586396740162284, 0.0093677569941078703, 0.0093771874116387374,
	0.0093868819983378531, 0.0093967925497928876, 0.0094068714177144939, 0.0094170713310682361,
	0.0094273452031763492, 0.0094376459217393512, 0.0094479261185638607, 0.0094581379156218788,
	0.009468232643908836, 0.0094781605314299688, 0.0094878703564197225, 0.0094973090625530606,
	0.0095064213311347734, 0.0095151491081183065, 0.0095234310817828502, 0.0095312021088901511,
	0.0095383925878363782, 0.0095449277790459926, 0.0095507270753425744, 0.0095557032286307259,
	0.0095597615443278675, 0.0095627990620949961, 0.0095647037511522159, 0.0095653537615408152,
	0.0095646167898721154, 0.0095623496400415609, 0.009558398086380827, 0.0095525971782307734,
	0.0095447721588529776, 0.0095347402033051625, 0.0095223132010203281, 0.0095073018063031572,
	0.0094895209361127129, 0.0094687967892835082, 0.0094449752791267924, 0.0094179315079733709,
	0.0093875795982572476, 0.0093538818860739673, 0.0093168562830461023, 0.009276580620211982,
	0.0092331930679799487, 0.0091868882508103818, 0.0091379093088583396, 0.0090865366989781697,
	0.0090330747944672614, 0.0089778372711016696, 0.0089211319440409068, 0.0088632453515865,
	0.0088044272061905213, 0.0087448750359504744, 0.0086847199981972874, 0.0086240159027715282,
	0.0085627347172787024, 0.0085007728134030135, 0.0084379722748622096, 0.0083741598601239815,
	0.0083092019874282334, 0.0082430675366559781, 0.0081758831337979763, 0.008107961376229364,
	0.0080397848743629444, 0.0079719394474176905, 0.0079050057758041688, 0.0078394344792915831,
	0.0077754385335765085, 0.0077129349814672029, 0.0076515549085064789, 0.0075907206285147581,
	0.0075297685268048429, 0.0074680819473562478, 0.0074051961366901654, 0.0073408481265914956,
	0.0072749645142771244, 0.0072076004837493693, 0.0071388554473763664, 0.0070687917277588485,
	0.0069973766666216412, 0.0069244611167136464, 0.0068498010617746956, 0.0067731225784399968,
	0.006694220125006538, 0.0066130631291911003, 0.0065298712361421133, 0.0064451155361034268,
	0.0063594211135793869, 0.0062733829759771768, 0.0061873465171648758, 0.0061012244763125195,
	0.0060144144053358873, 0.0059258528102031265, 0.0058342146465662787, 0.0057382435515626077,
	0.0056371388079093643, 0.0055307462424818302, 0.0054189591048074753, 0.0053001064538123858,
	0.0051730547904568032, 0.0050465432484334497, 0.0049218821075673914, 0.0047822071122432695,
	0.004626300410562792, 0.0044651623328801487, 0.0042781861333696276, 0.0040604634187546042,
	0.003700424025222691, 0.0032486569743742548, 0.0042340388376713488, 0.0056083050485402812,
	0.0063749676624316239, 0.0069672830260017523, 0.0076470179059090872, 0.0082097505052353779,
	0.0086837282387128567, 0.0091009046666209199, 0.0094725595012561774, 0.009813253685408951,
	0.010133326266844947, 0.010415583556401915, 0.010659690519802804, 0.010882441603589674,
	0.011098659685629193, 0.011301482582712493, 0.011496182383095596, 0.0116929475311687,
	0.011915257624270481, 0.012145884463671522, 0.012371166540434264, 0.012589867984830125,
	0.01280343216253493, 0.013012675492302355, 0.013217498801413407, 0.013417315961604222,
	0.01361142066872352, 0.013799178066066287, 0.013980104295994496, 0.014153891586804999,
	0.014320408676697949, 0.014479689903240589, 0.014631917787682452, 0.014777398720862259,
	0.014916528088175167, 0.015049740721932481, 0.015177446633583015, 0.015299961224903158,
	0.015417450465797185, 0.015529916434503103, 0.015637238093057379, 0.015739257230932818,
	0.015835875973133063, 0.015927128253497163, 0.016013205181143651, 0.016094437882646157,
	0.016171255294512039, 0.016244135172546775, 0.01631356058306617, 0.016379987724653093,
	0.016443826360181619, 0.01650543130681113, 0.016565102013338592, 0.016623087028688741,
	0.016679590732411136, 0.016734780557250886, 0.016788793718756637, 0.016841743026056386,
	0.016893721680865753, 0.016944807138526613, 0.016995064169701524, 0.017044547272044065,
	0.017093302567341664, 0.017141369297449787, 0.01718878100964151, 0.017235566502005306,
	0.01728175058315061, 0.017327354687601972, 0.017372397378360657, 0.017416894760605272,
	0.017460860824830924, 0.017504307733612341, 0.017547246062554717, 0.017589685004359042,
	0.017631632542280087, 0.017673095598410557, 0.017714080160964315, 0.01775459139394607,
	0.017794633731956572, 0.017834210962384401, 0.017873326296839045, 0.017911982433367217,
	0.017950181610740683, 0.017987925655898837, 0.018025216025463735, 0.018062053842106279,
	0.018098439926429764, 0.018134374824942311, 0.018169858834609705, 0.018204892024414041,
	0.01823947425428692, 0.018273605191737329, 0.018307284326454305, 0.01834051098312715,
	0.018373284332698723, 0.01840560340223777, 0.01843746708359623, 0.018468874140996086,
	0.018499823217674231, 0.018530312841698413, 0.018560341431053399, 0.018589907298087772,
	0.018619008653398161, 0.018647643609221498, 0.018675810182397602, 0.018703506296956576,
	0.018730729786380691, 0.018757478395584875, 0.018783749782653989, 0.01880954152037358,
	0.01883485109758383, 0.018859675920385708, 0.018884013313224778, 0.018907860519874416,
	0.018931214704339682, 0.01895407295168142, 0.018976432268890883, 0.018998289585532534,
	0.019019641754585214, 0.019040485553163435, 0.019060817683270097, 0.019080634772565778,
	0.019099933375162848, 0.019118709972453206, 0.019136960973976748, 0.019154682718336445,
	0.019171871474167185, 0.019188523441162501, 0.019204634751164826, 0.019220201469322719,
	0.019235219595319437, 0.019249685064676166, 0.019263593750132046, 0.019276941463104352,
	0.019289723955230438, 0.019301936919993171, 0.019313575994431415, 0.019324636760936008,
	0.019335114749133075, 0.019345005437853523, 0.019354304257189748, 0.019363006590638637,
	0.01937110777733083, 0.019378603114344736, 0.01938548785910384, 0.019391757231856498,
	0.019397406418235431, 0.019402430571894936, 0.019406824817223327, 0.019410584252127678,
	0.019413703950887568, 0.0194161789670734, 0.019418004336527551, 0.019419175080401547,
	0.019419686208246068, 0.019419532721148852, 0.019418709614915014, 0.019417211883283877,
	0.019415034521177051, 0.01941217252797011, 0.019408620910784088, 0.019404374687786944,
	0.019399428891498094, 0.019393778572091708, 0.019387418800685712, 0.01938034467261384,
	0.019372551310666512, 0.019364033868285689, 0.01935478753277969, 0.019344807528333688,
	0.019334089119122336, 0.019322627612251442, 0.019310418360644756, 0.019297456765828544,
	0.019283738280604919, 0.019269258411629537, 0.01925401272184556, 0.01923799683278659,
	0.019221206426729111, 0.019203637248688669, 0.019185285108242491, 0.019166145881172644,
	0.019146215510912473, 0.019125490009791489, 0.019103965460063543, 0.019081638014705981,
	0.01905850389798237, 0.019034559405753406, 0.019009800905528323, 0.018984224836242399,
	0.018957827707752714, 0.018930606100039406, 0.018902556662102301, 0.018873676110542442,
	0.018843961227818354, 0.01881340886016732, 0.018782015915180583, 0.018749779359024433,
	0.018716696213297204, 0.018682763551512851, 0.018647978495202472, 0.018612338209625864,
	0.01857583989908404, 0.018538480801826133, 0.018500258184551709, 0.018461169336441905,
	0.01842121156285766, 0.018380382178512678, 0.018338678500247785, 0.018296097839349511,
	0.018252637493415588, 0.018208294737761633, 0.018163066816363399, 0.018116950932330313,
	0.018069944237904621, 0.018022043823981797, 0.017973246709148231, 0.017923549828230821,
	0.017872950020355681, 0.017821444016510282, 0.017769028426606426, 0.017715699726039126,
	0.017661454241737741, 0.017606288137705293, 0.017550197400042065, 0.017493177821448734,
	0.017435224985205375, 0.017376334248621048, 0.017316500725949941, 0.017255719270768546,
	0.017193984457808391, 0.017131290564239288, 0.017067631550395961, 0.017003001039942799,
	0.016937392299468303, 0.016870798217502599, 0.016803211282949791, 0.016734623562925897,
	0.016665026679993439, 0.016594411788782452, 0.01652276955198714, 0.016450090115726283,
	0.016376363084255965, 0.016301577494019854, 0.016225721787024885, 0.01614878378352572,
	0.016070750654003426, 0.015991608890421682, 0.015911344276741651, 0.015829941858679208,
	0.015747385912683806, 0.015663659914119402, 0.015578746504627329, 0.015492627458648784,
	0.015405283649086013, 0.015316695012079329, 0.015226840510878152, 0.015135698098782735,
	0.015043244681136008, 0.014949456076342557, 0.014854306975895584, 0.014757770903392937,
	0.014659820172525349, 0.014560425844024448, 0.014459557681560311, 0.014357184106584226,
	0.014253272152119686, 0.014147787415509925, 0.014040694010142912, 0.013931954516185186,
	0.013821529930370143, 0.01370937961490575, 0.013595461245586034, 0.013479730759217093,
	0.013362142300499152, 0.013242648168541343, 0.013121198763229258, 0.012997742531716547,
	0.012872225915368999, 0.012744593297562345, 0.012614786952812523, 0.01248274699781475,
	0.012348411345073406, 0.012211715659933564, 0.012072593321964942, 0.011930975391815561,
	0.011786790584835654, 0.011639965252979253, 0.011490423376723619, 0.01133808656899829,
	0.011182874093392909, 0.011024702899208545, 0.010863487676223671, 0.010699140932364737,
	0.010531573097776362, 0.010360692659073448, 0.010186406327792484, 0.01000861924721384,
	0.0098272352417591996, 0.0096421571130136888, 0.0094532869860177813, 0.0092605267087235467,
	0.009063778306305708, 0.0088629444902341807, 0.008657929219505452, 0.0084486383080465792,
	0.0082349800679146767, 0.0080168659724217609, 0.0077942113167461923, 0.0075669358461721604,
	0.0073349643144230798, 0.0070982269278302684, 0.0068566596274781903, 0.0066102041646502237,
	0.0063588079406167661, 0.0061024236186353626, 0.0058410085856409593, 0.0055745244572595149,
	0.0053029369937961889, 0.0050262170211302854, 0.0047443431736744375, 0.0044573073149652333,
	0.0041651228872174326, 0.0038678341935389697, 0.0035655188277446603, 0.0032582632782995917,
	0.0029460712325761699, 0.0026286436123291504, 0.0023049953966920596, 0.0019730656365509322,
	0.0016297679521319645, 0.0012701632369176126, 0.00087605748822051758, 0.00032604336853138454,
	-0.0016567437204733802, -0.0027150775980217981, -0.0032768150624341791, -0.0033845297495315152,
	-0.0029792004310327524, -0.0018494765184515411, 0.00030410070872205475, 0.00044956314752425203,
	4.4100215116683054e-09, 0.0003838747509877288, 0.00027431805599360408, 0.0020986920571405823,
	0.0031691560966972759, 0.0035126583112284082, 0.0033809800507983712, 0.0028554550166475369,
	0.0019172306149642328, 0.0004596107766448012, 0.00071217769494326638, 0.00095153453210776982,
	0.0011725518065311886, 0.0013814625916194233, 0.0015801782756503225, 0.0017703296461730989,
	0.0019532391730479564, 0.002129708508665566, 0.0023001780751688524, 0.0024649226120429372,
	0.0026241653266760555, 0.0027781232385475905, 0.0029270167150037274, 0.0030710655752069784,
	0.0032104826276378394, 0.0033454686561770692, 0.0034762096788047599, 0.0036028761193287527,
	0.0037256232607632621, 0.0038445924194081497, 0.0039599124362634684, 0.0040717012304887865,
	0.0041800672707843567, 0.0042851108950821446, 0.0043869254547420069, 0.0044855982853455123,
	0.0045812115192442647, 0.0046738427603146273, 0.0047635656422655784, 0.0048504502904527409,
	0.0049345637047514389, 0.0050159700783536688, 0.0050947310647635824, 0.005170906002954799,
	0.0052445521086802978, 0.005315724638296917, 0.005384477030144926, 0.0054508610274728864,
	0.0055149267860669527, 0.0055767229690960934, 0.0056362968311803137, 0.0056936942932967229,
	0.0057489600098361657, 0.0058021374288877714, 0.0058532688466445054, 0.0059023954566810527,
	0.0059495573947398323, 0.0059947937795717708, 0.0060381427503047001, 0.006079641500751189,
	0.0061193263110191128, 0.0061572325767436003, 0.0061933948362249761, 0.0062278467957233219,
	0.0062606213531340039, 0.0062917506202430423, 0.0063212659437390274, 0.0063491979251384667,
	0.0063755764397633316, 0.0064004306548934835, 0.0064237890472013974, 0.006445679419563732,
	0.0064661289173319758, 0.006485164044133203, 0.0065028106772624496, 0.0065190940827194628,
	0.0065340389299337279, 0.0065476693062161704, 0.0065600087309677767, 0.0065710801696712172,
	0.006580906047686034, 0.0065895082638632047, 0.0065969082039923589, 0.0066031267540900274,
	0.0066081843135357733, 0.0066121008080599515, 0.0066148957025847985, 0.0066165880139193341,
	0.006617196323306266, 0.0066167387888186177, 0.0066152331576024882, 0.0066126967779616547,
	0.0066091466112790653, 0.0066045992437701135, 0.0065990708980618205, 0.0065925774445923886,
	0.0065851344128249247, 0.0065767570022699411, 0.006567460093310132, 0.0065572582578226363,
	0.0065461657695924363, 0.0065341966145122379, 0.0065213645005637007, 0.0065076828675750056,
	0.0064931648967511916, 0.006477823519972138, 0.0064616714288556268, 0.0064447210835812526,
	0.0064269847214728937, 0.0064084743653368189, 0.0063892018315533103, 0.0063691787379201283,
	0.0063484165112460914, 0.0063269263946940371, 0.0063047194548721697, 0.0062818065886737174,
	0.0062581985298647046, 0.0062339058554204286, 0.0062089389916110821, 0.0061833082198380351,
	0.0061570236822215954, 0.0061300953869425365, 0.0061025332133391114, 0.0060743469167618934,
	0.006045546133189245, 0.0060161403836061153, 0.005986139078149909, 0.0059555515200259588,
	0.0059243869091974303, 0.0058926543458527507, 0.0058603628336552959, 0.0058275212827796231,
	0.0057941385127388886, 0.0057602232550083557, 0.0057257841554499058, 0.0056908297765430283,
	0.0056553685994273932, 0.0056194090257627354, 0.0055829593794115753, 0.0055460279079597909,
	0.0055086227840241411, 0.0054707521065011123, 0.0054324239015550767, 0.0053936461235171351,
	0.0053544266556299737, 0.0053147733106583012, 0.0052746938313705059, 0.0052341958908984163,
	0.0051932870929808223, 0.0051519749720972457, 0.0051102669934979406, 0.0050681705531370469,
	0.0050256929775137679, 0.0049828415234287196, 0.0049396233776605979, 0.0048960456565696848,
	0.0048521154056333123, 0.004807839598918868, 0.0047632251385009809, 0.0047182788538262417,
	0.0046730075010327533, 0.0046274177622273715, 0.0045815162447279097, 0.004535309480272834,
	0.0044888039242031788, 0.0044420059546235596, 0.0043949218715423413, 0.0043475578959982115,
	0.0042999201691738143, 0.004252014751503534, 0.0042038476217754212, 0.004155424676235117,
	0.0041067517276806038, 0.0040578345045728, 0.004008678650148566, 0.003959289721537175,
	0.0039096731888647821, 0.0038598344344856015, 0.0038097787520180405, 0.0037595113455836022,
	0.0037090373289734931, 0.0036583617248486791, 0.0036074894639539687, 0.0035564253843506444,
	0.0035051742306632617, 0.0034537406533441226, 0.0034021292079530682, 0.0033503443544513423,
	0.0032983904565106041, 0.0032462717808342764, 0.003193992496490679, 0.0031415566742558541,
	0.0030889682859649918, 0.0030362312038697608, 0.0029833492000001767, 0.0029303259455273289,
	0.002877165010125735, 0.0028238698613316029, 0.0027704438638941334, 0.0027168902791166326,
	0.0026632122641840439, 0.0026094128714729821, 0.0025554950478402895, 0.002501461633886367,
	0.0024473153631882701, 0.0023930588614981831, 0.0023386946459025529, 0.0022842251239363199,
	0.0022296525926470741, 0.002174979237603084, 0.0021202071318395534, 0.0020653382347364285,
	0.0020103743908210466, 0.0019553173284886718, 0.0019001686586335026, 0.0018449298731821045,
	0.001789602343521069, 0.001734187318810247, 0.0016786859241719849, 0.0016230991587469297,
	0.0015674278936057876, 0.0015116728695059455, 0.0014558346944815255, 0.0013999138412542544,
	0.0013439106444519074, 0.0012878252976204492, 0.001231657850014558, 0.0011754082031507791,
	0.0011190761070639793, 0.0010626611564843263, 0.0010061627863618059, 0.00094958026741397865,
	0.00089291270117894189, 0.00083615901473764432, 0.00077931795504966182, 0.00072238808287396076,
	0.00066536776624487109, 0.00060825517347021165, 0.00055104826561644068, 0.00049374478844307185,
	0.00043634226374504023, 0.00037883798005887491, 0.00032122898268482561, 0.00026351206297337752,
	0.00020568374682006818, 0.00014774028230904595, 8.9677626439924594e-05, 3.1491430868899113e-05,
	-2.6822973411297014e-05, -8.5270592532188003e-05, -0.00014385678743701003, -0.00020258729288510379,
	-0.00026146823786911768, -0.00032050616754508124, -0.00037970806677834206, -0.00043908138541107374,
	-0.00049863406535546374, -0.00055837456961315606, -0.00061831191331251424, -0.00067845569683938243,
	-0.00073881614111054653, -0.00079940412500112, -0.00086023122487757276, -0.00092130975610570369,
	-0.00098265281628270753, -0.0010442743297753236, -0.0011061890929116899, -0.0011684128188487381,
	-0.0012309621806852243, -0.001293854850767727, -0.0013571095332739443, -0.0014207459859690776,
	-0.0014847850253884133, -0.0015492485074293499, -0.0016141592723316052, -0.001679541037838845,
	-0.0017454182206099592, -0.0018118156540804101, -0.0018787581626688568, -0.0019462699343690596,
	-0.0020143736122032632, -0.0020830889945062151, -0.0021524311925266515, -0.0022224080380536444,
	-0.0022930164604084051, -0.0023642374590891724, -0.0024360291874975064, -0.0025083175460787407,
	-0.0025809835916929032, -0.0026538470734669651, -0.0027266456339359304, -0.0027990098773692032,
	-0.0028704358727060526, -0.0029402589230270388, -0.0030076354060408453, -0.003071542156341233,
	-0.0031308033121587265, -0.0031841511398671149, -0.0032303209943640651, -0.0032681752234910238,
	-0.0032968484632035109, -0.0033159012284806901, -0.003325451076387426, -0.0033262270003447843,
	-0.0033194903184467694, -0.0033068077169280583, -0.0032897348834099887, -0.003269520807476617,
	-0.0032469312157095026, -0.0032222246546140345, -0.003195246212325263, -0.0031655723402110739,
	-0.0031326493636593838, -0.0030958971878343304, -0.0030547772780221381, -0.0030088401186633344,
	-0.002957770589394006, -0.0029014399894520871, -0.0028399458260923616, -0.0027735700258609631,
	-0.0027025675404913768, -0.002627011118584249, -0.0025481910329169569, -0.0024753147858171658,
	-0.0024414449017269913, -0.0025053420973972342, -0.0026043077244072483, -0.0025579715819568907,
	-0.0024188114410110639, -0.002336073763228883, -0.0023411137397964825, -0.0022601752347881322,
	-0.0021422929164785394, -0.0020939436518962154, -0.0021141849874753457, -0.0020583976757787398,
	-0.0019403403643408394, -0.0018132123958720964, -0.0016821457728397053, -0.0014836324160209648,
	-0.0013846970103180546, -0.0012537556791206031, -0.00088821486925079213, -0.0010706605201944257,
	-0.0012862683428218069, -0.0014433993710997863, -0.0015521421550144208, -0.0016764512810903145,
	-0.0017250146173119884, -0.0018411981178246097, -0.0018991785927123903, -0.0019344316387865078,
	-0.0020034339482182984, -0.0020953913456030404, -0.0021812533758372925, -0.0022498530926845129,
	-0.0023031581884864183, -0.0023462224965476028, -0.0023836657326061035, -0.0024191310335888224,
	-0.0024553613999320025, -0.0024943197271451618, -0.0025372685729366045, -0.0025848122088175042,
	-0.0026369291963504048, -0.0026930309970532337, -0.0027520685448828392, -0.0028126844763738377,
	-0.00287338816551664, -0.0029327219770911694, -0.0029893913925390292, -0.0030423456471604074,
	-0.0030908124668894837, -0.0031343025111999832, -0.0031726021151260789, -0.0032057682866283052,
	-0.0032341315225489957, -0.0032583029828129563, -0.0032791749824421855, -0.0032978998655271543,
	-0.0033158345391864834, -0.0033344467700806494, -0.0033551914287401497, -0.0033793744944900003,
	-0.003408025996137919, -0.0034418005965725679, -0.0034809190302464953, -0.0035251571798330175,
	-0.0035738828733264741, -0.0036261338042606803, -0.003680724147193325, -0.0037363635625214963,
	-0.0037917712461884019, -0.0038457699543159225, -0.0038973503055180149, -0.0039457027806842539,
	-0.0039902214186468225, -0.0040304872430462959, -0.0040662403627712701, -0.0040973482921393706,
	-0.0041237756936045554, -0.0041455585088709312, -0.0041627837795289307, -0.0041755753789924381,
	-0.0041840851982238728, -0.0041884888577610807, -0.0041889846568622744, -0.0041857942223689111,
	-0.0041791632596802223, -0.004169361012396307, -0.0041566775152538527, -0.0041414183845531584,
	-0.004123897558312657, -0.0041044288907676422, -0.0040833177060025407, -0.0040608533169022359,
	-0.0040373032079966285, -0.0040129091952853723, -0.0039878855309445974, -0.0039624186800549287,
	-0.0039366683778202984, -0.0039107695561618394, -0.0038848347736344657, -0.0038589568581925983,
	-0.003833211553648558, -0.0038076600332850497, -0.0037823512018596841, -0.0037573237493651866,
	-0.0037326079483376556, -0.0037082272041819974, -0.003684199377862624, -0.0036605379048840828,
	-0.0036372527356798219, -0.0036143511217094407, -0.0035918382696705354, -0.0035697178838570787,
	-0.0035479926142105885, -0.0035266644252212932, -0.0035057348986497062, -0.0034852054810394269,
	-0.0034650776857679207, -0.0034453532564380556, -0.0034260342999343917, -0.0034071233933930046,
	-0.003388623670524421, -0.0033705388912207441, -0.0033528734979090761, -0.0033356326616125684,
	-0.0033188223202641237, -0.0033024492114743331, -0.0032865209016699972, -0.0032710458132873036,
	-0.0032560332515129578, -0.0032414934319129939, -0.003227437510167941, -0.0032138776150376336,
	-0.0032008268855915536, -0.0031882995138289424, -0.0031763107933099901, -0.0031648771753321082,
	-0.0031540163330584111, -0.0031437472349343841, -0.0031340902281818432, -0.0031250671336564193,
	-0.0031167013529490649, -0.0031090179891614918, -0.0031020439821413644, -0.0030958082602745682,
	-0.0030903419094585856, -0.0030856783612529864, -0.0030818536016283512, -0.0030789064020011196,
	-0.0030768785742740536, -0.0030758152516315962, -0.0030757651968263766, -0.003076781139620247,
	-0.0030789201448860244, -0.0030822440126062251, -0.0030868197105809589, -0.0030927198400338279,
	-0.0031000231334227329, -0.0031088149825468018, -0.0031191879934124481, -0.003131242562234383,
	-0.0031450874638680143, -0.00316084044137765, -0.0031786287798793002, -0.0031985898439535472,
	-0.0032208715515332515, -0.0032456327513240061, -0.0032730434651937735, -0.0033032849533420751,
	-0.0033365495611597743, -0.0033730403173505602, -0.0034129702814191445, -0.0034565616991595952,
	-0.0035040451412882466, -0.0035556590137883937, -0.0036116502097367016, -0.0036722773468042392,
	-0.0037378192311600749, -0.0038085933407831694, -0.0038849930860274475, -0.0039675601478824487,
	-0.0040571230770455099, -0.0041550636858341226, -0.0042638355441818607, -0.0043879842198233619,
	-0.0045361289364379311, -0.004724500363469269, -0.0049817077536707692, -0.0053497711691205402,
	-0.0058511323172886539, -0.0063428396627843884, -0.0066831589383754535, -0.0069172523778672067,
	-0.0070911373490923106, -0.0072317831441546737, -0.0073530299352679053, -0.0074615583496844377,
	-0.0075605205808384583, -0.007651399711650398, -0.0077349105439847524, -0.0078114316795822262,
	-0.0078812118864932459, -0.0079444662194493466, -0.0080014174251993361, -0.0080523101693101458,
	-0.0080974121502538927, -0.0081370094127277484, -0.0081713996530798274, -0.0082008854243996749,
	-0.0082257681259029214, -0.0082463431094786863, -0.0082628959475224192, -0.0082756997652980897,
	-0.0082850134826101349, -0.0082910807957452797, -0.0082941297396239757, -0.008294372689381449,
	-0.0082920066832083122, -0.0082872139705811795, -0.0082801627096815832, -0.0082710077564117166,
	-0.0082598914992548182, -0.008246944708467395, -0.0082322873754833766, -0.0082160295261986312,
	-0.0081982719971694755, -0.0081791071678891068, -0.0081586196453773477, -0.0081368868995608593,
	-0.0081139798495222498, -0.0080899634018099398, -0.0080648969427436646, -0.0080388347871186722,
	-0.0080118265859765239, -0.0079839176962272999, -0.007955149514920495, -0.0079255597809015105,
	-0.0078951828465075417, -0.0078640499216049327, -0.0078321892928389352, -0.0077996265193797385,
	-0.0077663846080033945, -0.007732484168820962, -0.0076979435536058656, -0.007662778977981316,
	-0.0076270046291045893, -0.0075906327598472718, -0.0075536737710088942, -0.0075161362819626465,
	-0.0074780271913233833, -0.007439351728101398, -0.0074001134942783073, -0.0073603144995382204,
	-0.0073199551888776491, -0.0072790344638064882, -0.0072375496978648235, -0.0071954967472176307,
	-0.0071528699571594178, -0.0071096621654675807, -0.0070658647036974578, -0.0070214673977223967,
	-0.006976458569103703, -0.0069308250392461617, -0.0068845521386070316, -0.006837623724823428,
	-0.0067900222118569839, -0.0067417286170354815, -0.0066927226307326743, -0.0066429827168783418,
	-0.0065924862539045032, -0.0065412097282667734, -0.0064891289956897809, -0.0064362196289232381,
	-0.0063824573751085443, -0.0063278187508346547, -0.0062722818084864542, -0.0062158271132497327,
	-0.0061584389755124438, -0.0061001069873061866, -0.0060408279121070942, -0.0059806079721267209,
	-0.0059194655625201525, -0.0058574343931243498, -0.0057945670104310714, -0.0057309385815027909,
	-0.0056666507270018065, -0.0056018350792394261, -0.0055366561319729335, -0.0054713128727619364,
	-0.0054060386933205834, -0.005341099197423785, -0.0052767877945013256, -0.0052134193487568172,
	-0.005151322557259282, -0.0050908320145890947, -0.0050322809473056836, -0.0049759952999864328,
	-0.0049222892741933527, -0.0048714617201049909, -0.0048237921619146435, -0.0047795348718765234,
	-0.0047389093766102763, -0.0047020860814892904, -0.004669166296976713, -0.0046401568283244675,
	-0.0046149404795436137, -0.0045932453700822098, -0.0045746178117238778, -0.0045584053037263095,
	-0.0045437572084321811, -0.0045296497866001489, -0.0045149386946101789, -0.004498436138752661,
	-0.0044790035972902308, -0.0044556470232883861, -0.0044276013412862343, -0.0043943943698962918,
	-0.0043558850815519348, -0.0043122752705145283, -0.0042640959433736612, -0.0042121699344045234,
	-0.0041575515992427385, -0.0041014451458493634, -0.0040451068150930058, -0.0039897416409475301,
	-0.0039364089545671412, -0.0038859485083291229, -0.0038389315906933426, -0.0037956333837740551,
	-0.0037560188058352521, -0.003719735730414976, -0.0036861152675806302, -0.0036541858299897647,
	-0.0036227125221108569, -0.0035902722747435268, -0.0035553660316665799, -0.0035165550218990383,
	-0.0034725967490090324, -0.0034225553740434983, -0.003365871854724512, -0.0033023971960847651,
	-0.0032324119316645677, -0.0031566706657712757, -0.0030765145289087439, -0.0029940779685071173,
	-0.0029125678837835229, -0.0028364388901618584, -0.0027706510659075401, -0.0027164647277249476,
	-0.0026618286745187509, -0.0025799470480520332, -0.002459743610310912, -0.0023516625024847452,
	-0.0022905455453767955, -0.0021483022698855696, -0.0020619303348726114, -0.0019256810321738515,
	-0.0016847053779967306, -0.0014296891714441122, -0.0013913021113558922, -0.0017639967932807797,
	-0.0020577516247719209, -0.0022858179010975758, -0.0024571494922259762, -0.0026363645751781768,
	-0.0027695872951459016, -0.0028804010460438748, -0.0030396363798716633, -0.0032631979481806878,
	-0.0033985802756199088, -0.0034403390883001178, -0.0034988329334546616, -0.0036397062472417361,
	-0.0036818030522951834, -0.0036495332184247357, -0.0037191605932179505, -0.0039543173729796408,
	-0.0041539485291467743, -0.00425787797647177, -0.0043205629922301071, -0.004373235478197038,
	-0.0044259316237561406, -0.0044806821089935032, -0.0045377405603300993, -0.0045972337869384979,
	-0.0046592082896505767, -0.0047235081849641685, -0.0047897737438553417, -0.0048575049152778868,
	-0.0049261287213621038, -0.004995053628444485, -0.0050637210560417626, -0.0051316732332666185,
	-0.0051986517225202401, -0.0052647230450550879, -0.0053303997236063246, -0.0053966979480677014,
	-0.0054650685793629908, -0.005537176278817414, -0.0056145752152609116, -0.0056983934105416583,
	-0.0057891391131804698, -0.0058866768464758898, -0.0059903399841087787, -0.006099107132625672,
	-0.0062117808830010855, -0.0063271385613225123, -0.0064440457664141039, -0.0065615304550635826,
	-0.0066788183664930559, -0.0067953354572919868, -0.0069106875688183557, -0.0070246286541642312,
	-0.0071370266401064334, -0.007247832437472063, -0.0073570544835317563, -0.0074647391677102604,
	-0.0075709564713749671, -0.0076757898027139905, -0.0077793290132520078, -0.0078816657350877298,
	-0.0079828903651103338, -0.0080830901940364026, -0.008182348317481913, -0.0082807430724138199,
	-0.0083783478200988425, -0.0084752309522952273, -0.0085714560365951972, -0.0086670820441018172,
	-0.008762163621518956, -0.0088567513823518147, -0.0089508922018208988, -0.0090446295042151629,
	-0.0091380035375060783, -0.0092310516314293607, -0.0093238084375227327, -0.0094163061506978823,
	-0.009508574712663205, -0.0096006419979624055, -0.0096925339836497499, -0.0097842749037481223,
	-0.0098758873896766797, -0.0099673925978228627, -0.010058810325387477, -0.010150159115566357,
	-0.010241456353057662, -0.010332718350805212, -0.010423960428811012, -0.010515196985773504,
	-0.010606441564238655, -0.010697706909883762, -0.010789005025494193, -0.010880347220136357,
	-0.010971744153981734, -0.011063205879189774, -0.011154741877217505, -0.011246361092886214,
	-0.011338071965503207, -0.011429882457306603, -0.011521800079474277, -0.011613831915915687,
	-0.011705984645042458, -0.011798264559695621, -0.011890677585390133, -0.011983229297022046,
	-0.012075924934169899, -0.01216876941511022, -0.012261767349655089, -0.012354923050911156,
	-0.012448240546049323, -0.012541723586167291, -0.012635375655319876, -0.012729199978784987,
	-0.012823199530628238, -0.012917377040647228, -0.013011735000596478, -0.013106275670140562,
	-0.013201001082017893, -0.01329591304690284, -0.013391013157813516, -0.013486302794134502,
	-0.013581783125286523, -0.013677455114072966, -0.013773319519731533, -0.01386937690071602,
	-0.013965627617233132, -0.014062071833555968, -0.014158709520135414, -0.014255540455528801,
	-0.014352564228164059, -0.014449780237956152, -0.014547187697792056, -0.014644785634898842,
	-0.014742572892108688, -0.0148405481290344, -0.014938709823167031, -0.015037056270907163,
	-0.015135585588540777, -0.015234295713169178, -0.015333184403602514, -0.015432249241225356,
	-0.015531487630842295, -0.015630896801510762, -0.015730473807367969, -0.015830215528457564,
	-0.015930118671562271, -0.016030179771046715, -0.016130395189714812, -0.016230761119686125,
	-0.016331273583293313, -0.016431928434003693, -0.016532721357367382, -0.016633647871992056,
	-0.01673470333054615, -0.016835882920790007, -0.016937181666634542, -0.017038594429226169,
	-0.017140115908056024, -0.017241740642090723, -0.017343463010922003, -0.017445277235930385,
	-0.017547177381458303, -0.017649157355988095, -0.017751210913317047, -0.017853331653723867,
	-0.017955513025117626, -0.018057748324171414, -0.018160030697366724, -0.018262353142109805,
	-0.018364708507661469, -0.018467089496070187, -0.018569488663008494, -0.018671898418511836,
	-0.018774311027605278, -0.018876718610808443, -0.018979113144493447, -0.019081486461083305,
	-0.019183830249070104, -0.019286136052834947, -0.019388395272247397, -0.019490599162023583,
	-0.01959273883081953, -0.01969480524003701, -0.019796789202316614, -0.019898681379691786,
	-0.020000472281377808, -0.020102152261167263, -0.020203711514403283, -0.020305140074500086,
	-0.02040642780898028, -0.020507564414996536, -0.020608539414303951, -0.02070934214764919,
	-0.020809961768540764, -0.020910387236363993, -0.021010607308802758, -0.021110610533529198,
	-0.02121038523912212, -0.021309919525172121, -0.021409201251531822, -0.021508218026667893,
	-0.021606957195070168, -0.021705405823672776, -0.021803550687233317, -0.021901378252657182,
	-0.021998874662137635, -0.022096025715161456, -0.022192816849257491, -0.022289233119461984,
	-0.022385259176442931, -0.022480879243226955, -0.022576077090473035, -0.022670836010234646,
	-0.022765138788150768, -0.022858967674005273, -0.022952304350592749, -0.023045129900826952,
	-0.023137424773027913, -0.023229168744319927, -0.023320340882074599, -0.023410919503329047,
	-0.0235008821321082, -0.023590205454581049, -0.023678865271976421, -0.023766836451183802,
	-0.023854092872964167, -0.023940607377693063, -0.024026351708557863, -0.024111296452129949,
	-0.024195410976230708, -0.024278663365011093, -0.024361020351161194, -0.024442447245167878,
	-0.024522907861536779, -0.024602364441894779, -0.024680777574889554, -0.024758106112802391,
	-0.02483430708479125, -0.024909335606681644, -0.024983144787224746, -0.025055685630742265,
	-0.02512690693608215, -0.025196755191808449, -0.025265174467555364, -0.025332106301476098,
	-0.025397489583723957, -0.025461260435907424, -0.025523352086465362, -0.025583694741919183,
	-0.025642215453962083, -0.02569883798235777, -0.025753482653629086, -0.025806066215528115,
	-0.025856501687292751, -0.025904698205705769, -0.025950560866990463, -0.025993990564589172,
	-0.026034883822892679, -0.026073132627003073, -0.02610862424863699, -0.026141241068295032,
	-0.026170860393847532, -0.026197354275711349, -0.026220589318817589, -0.026240426491596421,
	-0.026256720932234599, -0.026269321752486228, -0.026278071839348927, -0.026282807654943684,
	-0.02628335903496392, -0.026279548986087569, -0.02627119348276653, -0.026258101263830862,
	-0.026240073629360632, -0.026216904238287944, -0.026188378907194689, -0.026154275410765454,
	-0.026114363284332826, -0.026068403628921634, -0.026016148919138987, -0.025957342814185661,
	-0.025891719972150291, -0.025819005867611565, -0.025738916612379731, -0.025651158778972668,
	-0.025555429226110041, -0.025451414925119036, -0.0253387927856558, -0.025217229478528586,
	-0.02508638125263957, -0.024945893742104278, -0.024795401758405566, -0.024634529060955597,
	-0.024462888097577393, -0.024280079704110058, -0.024085692749460673, -0.023879303708834961,
	-0.023660476143414832, -0.023428760059174204, -0.023183691110601718, -0.022924789606486858,
	-0.022651559264261472, -0.022363485646227876, -0.022060034194858014, -0.021740647764698407,
	-0.021404743524790076, -0.02105170907755563, -0.020680897607827521, -0.020291621839751584,
	-0.019883146541585787, -0.019454679282910711, -0.019005359122899492, -0.018534242904941566,
	-0.018040288873078011, -0.017522337441920628, -0.016979089190777497, -0.016409080575023084,
	-0.015810658514840613, -0.015181955952431575, -0.014520871524063577, -0.013825057101762381,
	-0.013091915541772607, -0.012318603873121536, -0.011502017066849413, -0.010638682779120013,
	-0.0097244187859314019, -0.0087535223719351699, -0.0077173630977109033, -0.0066030488117385612,
	-0.0053941605663419007, -0.0040686729373767359, -0.0025577256374957366, -0.00055181115678303732,
	0.00029996217248428811, 0.00033185077825262089, 0.00031219116030715987, 0.00026006805769411047,
	0.00018908264247732365, 0.00011901771663499247, -0.0016176198653412911, -0.0038373576883826816,
	-4.4100215116682921e-09, 0.0032766580961782867, 0.0014591953391378063, 0.00013505526243176545,
	0.00020113866893438148, 0.00026991348634998393, 0.00032211524451435087, 0.00034900842989910919,
	0.00034712469606112815, 0.00077786693062551881, 0.0020792644013682628, 0.0030480198821997042,
	0.003880879304633262, 0.0046231938538038838, 0.0052906003759527007, 0.0058952914312113188,
	0.006447269671478806, 0.0069537944912511839, 0.0074201508267227167, 0.0078504929933085714,
	0.00824834026624424, 0.0086167970244504198, 0.0089586339165338615, 0.0092763169783179091,
	0.0095720248143232947, 0.0098476677537820169, 0.010104911389338993, 0.010345202999587274,
	0.010569798692470727, 0.010779789549142823, 0.010976125698993996, 0.01115963780538125,
	0.011331055821943411, 0.011491025111358867, 0.011640120142465684, 0.011778856035103534,
	0.011907698232846929, 0.012027070570982916, 0.012137361982711129, 0.012238932057828507,
	0.012332115639201845, 0.01241722661523874, 0.012494561042288011, 0.012564399709714577,
	0.012627010242212628, 0.012682648818493613, 0.012731561572480912, 0.012773985732234313,
	0.012810150542692727, 0.012840278010688135, 0.012864583504302826, 0.012883276233303488,
	0.012896559632924548, 0.012904631669534835, 0.012907685083589155, 0.012905907582643076,
	0.012899481995002569, 0.012888586392733574, 0.012873394191202855, 0.012854074231017908,
	0.012830790847142474, 0.012803703929045798, 0.012772968974979882, 0.012738737142836439,
	0.012701155299503305, 0.012660366070196254, 0.01261650788887534, 0.012569715050552963,
	0.01252011776605293, 0.012467842219578694, 0.012413010629285926, 0.012355741310924826,
	0.012296148744515118, 0.012234343643937004, 0.012170433029260826, 0.012104520301594753,
	0.012036705320196439, 0.011967084481576963, 0.011895750800310976, 0.011822793991264071,
	0.011748300552949389, 0.011672353851730188, 0.01159503420659602, 0.011516418974249546,
	0.011436582634257439, 0.011355596874031572, 0.01127353067342403, 0.011190450388735777,
	0.011106419835954593, 0.011021500373055439, 0.010935750981211766, 0.010849228344782386,
	0.010761986929953768, 0.010674079061931761, 0.010585555000590463, 0.010496463014499705,
	0.010406849453263102, 0.010316758818112396, 0.010226233830711586, 0.010135315500136842,
	0.01004404318800488, 0.0099524546717324035, 0.0098605862059158323, 0.0097684725818276055,
	0.0096761471850322581, 0.0095836420511293836, 0.0094909879196381827, 0.0093982142860398743,
	0.0093053494520010625, 0.0092124205738025895, 0.0091194537090025004, 0.0090264738613646638,
	0.0089335050240860036, 0.0088405702213582241, 0.0087476915483013194, 0.0086548902093073841,
	0.0085621865548345267, 0.0084696001166918999, 0.0083771496418568823, 0.0082848531248671479,
	0.0081927278388289563, 0.0081007903650852087, 0.0080090566215853306, 0.0079175418899995222,
	0.0078262608416197164, 0.007735227562089401, 0.007644455575004162, 0.007553957864423172,
	0.0074637468963336647, 0.0073738346391072794, 0.007284232582988142, 0.0071949517586515467,
	0.0071060027548708188, 0.0070173957353297659, 0.0069291404546169087, 0.0068412462734371935,
	0.0067537221730757995, 0.0066665767691476991, 0.0065798183246659706, 0.0064934547624626885,
	0.0064074936769828363, 0.0063219423455084887, 0.0062368077388047565, 0.0061520965312460976,
	0.0060678151104368921, 0.0059839695863556806, 0.0059005658000482932, 0.005817609331894914,
	0.0057351055094744079, 0.0056530594150488887, 0.0055714758926904322, 0.0054903595550715003,
	0.0054097147899383911, 0.0053295457662880163, 0.0052498564402657221, 0.0051706505608026618,
	0.0050919316750088111, 0.0050137031333379375, 0.0049359680945406008, 0.0048587295304182388,
	0.0047819902303936788, 0.0047057528059096495, 0.0046300196946692396, 0.0045547931647285655,
	0.0044800753184526983, 0.004405868096347086, 0.004332173280771328, 0.0042589924995466051,
	0.0041863272294632653, 0.0041141787996990817, 0.0040425483951531315, 0.0039714370597054962,
	0.0039008456993994711, 0.0038307750855677675, 0.0037612258578970065, 0.0036921985274346947,
	0.0036236934795450823, 0.0035557109768389419, 0.0034882511620244203, 0.0034213140607529963,
	0.0033548995844136027, 0.003289007532897749, 0.0032236375973324571, 0.0031587893627861565,
	0.0030944623109460771, 0.0030306558227714423, 0.0029673691811224292, 0.002904601573365541,
	0.0028423520939576978, 0.0027806197470086032, 0.0027194034488224653, 0.0026587020304191084,
	0.0025985142400352995, 0.0025388387456057784, 0.0024796741372248667, 0.0024210189295875346,
	0.0023628715644108808, 0.0023052304128353194, 0.00224809377780522, 0.0021914598964289612,
	0.0021353269423180876, 0.0020796930279051475, 0.0020245562067400134, 0.0019699144757645824,
	0.0019157657775652765, 0.0018621080026033137, 0.0018089389914227017, 0.0017562565368355952,
	0.0017040583860851637, 0.0016523422429858307, 0.0016011057700412318, 0.0015503465905399572,
	0.0015000622906293632, 0.0014502504213680669, 0.0014009085007577057, 0.0013520340157545355,
	0.0013036244242619641, 0.0012556771571050915, 0.0012081896199883594, 0.0011611591954381131,
	0.0011145832447316077, 0.0010684591098144272, 0.0010227841152087643, 0.00097755556991500664,
	0.00093277076930956156, 0.00088842699704229865, 0.00084452152693713486, 0.00080105162490008426,
	0.00075801455083336774, 0.00071540756059405082, 0.00067322790792471467, 0.00063147284646137105,
	0.00059013963175551763, 0.00054922552334513792, 0.00050872778687950334, 0.00046864369630759538,
	0.00042897053614171759, 0.00038970560380860274, 0.00035084621210217982, 0.00031238969175395473,
	0.00027433339413859061, 0.00023667469413477749, 0.00019941099316390137, 0.00016253972243201594,
	0.0001260583464036721, 8.9964366540583687e-05, 5.4255325341781159e-05, 1.8928810727853915e-05,
	-1.601753918291314e-05, -5.058603085107623e-05, -8.4778909582268588e-05, -0.00011859835321010224,
	-0.00015204646511186816, -0.00018512526645981796, -0.00021783668759487099, -0.00025018255839147374,
	-0.00028216459745948483, -0.00031378440000257311, -0.00034504342412052278, -0.00037594297530411464,
	-0.00040648418882389953, -0.0004366680096576824, -0.00046649516953082312, -0.00049596616055843073,
	-0.00052508120487226514, -0.00055384021948474895, -0.0005822427754800367, -0.00061028805041964714,
	-0.00063797477259658971, -0.00066530115545430479, -0.00069226482008532403, -0.0007188627032186089,
	-0.00074509094746319136, -0.00077094476976214473, -0.00079641830298487234, -0.00082150440423123911,
	-0.00084619442188143331, -0.00087047791114215449, -0.00089434228539220565, -0.00091777238728454034,
	-0.00094074995965456442, -0.00096325299165127287, -0.00098525491035820405, -0.0010067235830129998,
	-0.001027620090933608, -0.001047897235774605, -0.0010674977461823296, -0.0010863521760417002,
	-0.0011043765369971442, -0.0011214698066533879, -0.0011375116236435623, -0.0011523607418334339,
	-0.0011658551608701283, -0.001177815197027155, -0.001188050892172069, -0.0011963747293213098,
	-0.0012026193272394875, -0.0012066577950797398, -0.0012084227233178483, -0.0012079196646216778,
	-0.0012052326262810642, -0.0012005210559266975, -0.001194008499578781, -0.001185962933023363,
	-0.0011766694032251581, -0.0011663978854764858, -0.0011553723321591142, -0.0011437487103232202,
	-0.0011316081368045819, -0.0011189658155673964, -0.0011057904889412063, -0.0010920263976464226,
	-0.0010776112855905965, -0.0010624877062870492, -0.0010466082147748198, -0.0010299367730245059,
	-0.0010124490003203715, -0.0009941331029584752, -0.00097499062098051691, -0.00095502924054835492,
	-0.0009342322426480887, -0.00091252253313962471, -0.00088994193376748932, -0.00086774975860257856,
	-0.00085114705685119857, -0.00084725581420657628, -0.00084252653084825925, -0.00082603341568818895,
	-0.00080240205562584889, -0.00078131568077856751, -0.0007684243589010613, -0.00074655146920402787,
	-0.00071849600603147231, -0.00069629837845047097, -0.00067841786592702286, -0.00065147488471483869,
	-0.00061885193474614443, -0.0005822696956140264, -0.00054050921319143282, -0.00048674835262672704,
	-0.00044696109434235398, -0.0003943474861640312, -0.00029186676606580958, -0.0004711829423926484,
	-0.00058560402265473853, -0.00068453437554379397, -0.0007480761457516722, -0.00080658301401431405,
	-0.00085407867988252569, -0.00090541385425340433, -0.00094912724566911268, -0.0009889405381994479,
	-0.0010308798469928851, -0.0010739513877153126, -0.0011152496030866338, -0.0011538354011298249,
	-0.0011899839261801878, -0.0012242026716025364, -0.0012569613397307108, -0.0012886583948285967,
	-0.001319619658839556, -0.0013500952972707975, -0.0013802557936413102, -0.0014101901557841193,
	-0.0014399096381683008, -0.0014693594899529859, -0.00149843858591545, -0.0015270235435302214,
	-0.0015549920817837018, -0.0015822408302633138, -0.001608695077920606, -0.0016343108318854825,
	-0.0016590717213142191, -0.0016829839814982614, -0.0017060721531959788, -0.0017283769431393802,
	-0.0017499555167074011, -0.0017708835362309123, -0.0017912574933212, -0.0018111953631885628,
	-0.0018308335962976523, -0.0018503192411066446, -0.0018697974897399538, -0.0018893965912343868,
	-0.0019092131627063368, -0.0019293010489260392, -0.0019496660982098585, -0.0019702678624880579,
	-0.0019910276824654047, -0.0020118412745356164, -0.0020325931283987709, -0.0020531699319913501,
	-0.0020734708289269683, -0.0020934133631890614, -0.0021129351395553571, -0.0021319921643504387,
	-0.002150555278805537, -0.0021686060314760696, -0.0021861329393692555, -0.0022031286091886895,
	-0.0022195878100644355, -0.0022355063716030829, -0.0022508807058783963, -0.0022657077650148224,
	-0.0022799852942813111, -0.0022937122867294941, -0.0023068895701173846, -0.0023195204569771491,
	-0.002331611373395655, -0.0023431723674797863, -0.0023542174003566849, -0.0023647643491056651,
	-0.0023748346987829795, -0.0023844529561911645, -0.0023936458643460598, -0.0024024415212043162,
	-0.0024108685056745899, -0.0024189550936668373, -0.0024267286163768896, -0.0024342149824369851,
	-0.0024414383607852127, -0.0024484210051311048, -0.0024551831930849292, -0.0024617432514496911,
	-0.0024681176415108498, -0.002474321082414235, -0.0024803666955051798, -0.0024862661569907234,
	-0.0024920298500951178, -0.0024976670108959945, -0.0025031858643006053, -0.0025085937482609462,
	-0.0025138972254637416, -0.002519102182488654, -0.0025242139169085482, -0.0025292372130889173,
	-0.0025341764075923513, -0.0025390354451518254, -0.0025438179261753438, -0.0025485271467082233,
	-0.0025531661317141643, -0.0025577376624859728, -0.0025622442988859529, -0.0025666883970817704,
	-0.0025710721233428405, -0.0025753974644046073, -0.0025796662348412307, -0.0025838800818276746,
	-0.0025880404876168703, -0.0025921487700068528, -0.0025962060810259106, -0.0026002134040207891,
	-0.0026041715492930387, -0.0026080811483911929, -0.0026119426471321074, -0.002615756297391302,
	-0.0026195221476711618, -0.0026232400324253005, -0.0026269095600880113, -0.0026305300997280399,
	-0.0026341007662175329, -0.0026376204037765875, -0.0026410875677242364, -0.002644500504235734,
	-0.0026478571278732142, -0.0026511549966241432, -0.0026543912841458144, -0.0026575627488796567,
	-0.0026606656996593066, -0.0026636959573999391, -0.0026666488124169334, -0.0026695189768854216,
	-0.0026723005319178382, -0.0026749868687087524, -0.0026775706231778299, -0.0026800436035387459,
	-0.0026823967102417917, -0.0026846198477917982, -0.002686701828044113, -0.0026886302647503722,
	-0.0026903914593878102, -0.0026919702786948048, -0.0026933500248979476, -0.0026945123004094244,
	-0.0026954368698746066, -0.0026961015239577654, -0.0026964819512854538, -0.0026965516276806316,
	-0.0026962817353915003, -0.0026956411296626616, -0.0026945963759491911, -0.0026931118885807799,
	-0.0026911502109679348, -0.0026886724886542143, -0.0026856391996487967, -0.0026820112212306963,
	-0.0026777513280641634, -0.0026728262316231214, -0.0026672092833860432, -0.0026608839709249604,
	-0.0026538483330777666, -0.0026461204041109969, -0.0026377447647345223, -0.0026288002294638933,
	-0.0026194086291623469, -0.0026097444996563838, -0.0026000449767149604, -0.0025906171689352472,
	-0.0025818328546722163, -0.0025740777975393442, -0.0025675753042789565, -0.0025619247469290925,
}

// protoFilter1024LD holds the low-delay prototype lowpass, sampled at a hop
// resolution of 1024 (10240 coefficients covering 10 hops).
var protoFilter1024LD = [10240]float64{
	-0.014084009774725972, -0.014839717839156445, -0.015272531737439048, -0.015716393418252216,
	-0.016123518884648278, -0.016572838503408141, -0.016987857105094342, -0.017414889358804878,
	-0.017766681844967037, -0.018236842713877086, -0.018634092827769722, -0.019046492769384554,
	-0.019417911922868226, -0.019840967196750204, -0.020224954019571334, -0.020625959440399726,
	-0.020833199080797563, -0.021389792361055877, -0.021759738753223627, -0.022147665434574304,
	-0.022488316028638496, -0.022891532283867411, -0.023247856482687186, -0.023625090002265699,
	-0.023895298537006743, -0.024338128903072, -0.024680552942214266, -0.025044081996012376,
	-0.025349661042667025, -0.025730961845527589, -0.026061147658423149, -0.026420693855260958,
	-0.02611723215454138, -0.027053355399169806, -0.027364126601574276, -0.027694024194597232,
	-0.027963412852127636, -0.028310933276894924, -0.028597517555716323, -0.028909106504117377,
	-0.029089760529565929, -0.029473604955091173, -0.029736168823278043, -0.030023884260084319,
	-0.030244336942427518, -0.030543507680056016, -0.030786117895947842, -0.031054167920363154,
	-0.031007092392799231, -0.031498138748110013, -0.031709174212030192, -0.031944063347052756,
	-0.03210432725292639, -0.032355609946920778, -0.032537164734798396, -0.032747730869411039,
	-0.032809864731894761, -0.033090790119535432, -0.033242166934122568, -0.033422925233692044,
	-0.033537719255850057, -0.03371936757488582, -0.033867090710467979, -0.03404202987634003,
	-0.033254012387579433, -0.034216969624667075, -0.034322678075759561, -0.034448596483821745,
	-0.034497750604925735, -0.034648709591266751, -0.034721480150475673, -0.034829342844809069,
	-0.034767116461969866, -0.034967840769651988, -0.035018890388619744, -0.035104745271178371,
	-0.035110428843469203, -0.03521274940769064, -0.035256928160495506, -0.035335892732368493,
	-0.035023424507045105, -0.035370152896081489, -0.035390057804373522, -0.035442687804352599,
	-0.035410346290377814, -0.035491749687807238, -0.035497678242186824, -0.035543721470339601,
	-0.035426123179406119, -0.035554303862028819, -0.035547048043384814, -0.035580676835575149,
	-0.035553670424155116, -0.035589560484942405, -0.035615296730074887, -0.03567425734158039,
	-0.034642546361224373, -0.035563900531432421, -0.035556299751782525, -0.035575046105374597,
	-0.035514651622959803, -0.035573478113089953, -0.035550834769855551, -0.035573553708150463,
	-0.035412174368133473, -0.035546527410194421, -0.035522316738642229, -0.035541907190794794,
	-0.035479013003382215, -0.035524893401103472, -0.035515359453216926, -0.035548278094775725,
	-0.035159018913161547, -0.03548333079242498, -0.035463341893202258, -0.035482647581457125,
	-0.035413148673658489, -0.035470622683872417, -0.035450253860481479, -0.035476776188691342,
	-0.035330384343951811, -0.035447934650766288, -0.035424828257467837, -0.035448518163040059,
	-0.035411481345067358, -0.035438308594874124, -0.03546393370870609, -0.035526372133805016,
	-0.034445501983075152, -0.035395847655842978, -0.035387580243613402, -0.035407852374317934,
	-0.03534357515976233, -0.035407827022918135, -0.03538619031253841, -0.035413391049599507,
	-0.035242140292639994, -0.035387592694448688, -0.035363640643452238, -0.035386665105392547,
	-0.035320378349382044, -0.035369501436124114, -0.035359919619481824, -0.035395276328851533,
	-0.034977377283361359, -0.035317706377840249, -0.035291412946712876, -0.035305555739547113,
	-0.035222219955648608, -0.035273851756017612, -0.035239870267745561, -0.035254840289778155,
	-0.035079748311959702, -0.035187400569262214, -0.03514206598639795, -0.035144330759729524,
	-0.035077876782904818, -0.035077283069891475, -0.035075206770005841, -0.035111041293690498,
	-0.033933889552017663, -0.03489607304567665, -0.034845232650701712, -0.034821289229819322,
	-0.034703189361928878, -0.034719806537872593, -0.034642501523365142, -0.034614065379935173,
	-0.034369407696453733, -0.034460190283777073, -0.034367151038022035, -0.034321415219879706,
	-0.034177412634310698, -0.034152756747710976, -0.034063698365540573, -0.034019639876335585,
	-0.033492463845473601, -0.033764675084393597, -0.033645913778466131, -0.033567342857023959,
	-0.033383409026756662, -0.033339701205134471, -0.033202929050465117, -0.033115716192063695,
	-0.032827050046233111, -0.032834116144904717, -0.032678667904493724, -0.032570864102719393,
	-0.032389442378128838, -0.032276898976912605, -0.032160887658527863, -0.032084263333213341,
	-0.030790965164235556, -0.031648577222314837, -0.031478863787224795, -0.031339959483949652,
	-0.031103132266937016, -0.031005248416153014, -0.030814898492207594, -0.030673575834071848,
	-0.03031780567144382, -0.030300421410531558, -0.030098945168794997, -0.029947094043282513,
	-0.029700538299438323, -0.029576198935726109, -0.029387227140556312, -0.029245503757594934,
	-0.0286481075438841, -0.028825696149495806, -0.028620928236476675, -0.028460270596457504,
	-0.02820186217847687, -0.028083118743596348, -0.027876080342134832, -0.027720156934126265,
	-0.027377500785948413, -0.027325787554517915, -0.027117450614966371, -0.026956168498466319,
	-0.026722886189683843, -0.026569962298822362, -0.026400920877054534, -0.026273972320816543,
	-0.024990112261635583, -0.025796781134622332, -0.025587044739878387, -0.025407096452029956,
	-0.025136813455083, -0.024990276077523341, -0.024747686841786572, -0.024544480032916361,
	-0.024144841104915677, -0.024040721362837025, -0.02374914646603437, -0.02348360320277226,
	-0.023107126335247075, -0.022826765492011743, -0.022445966936023808, -0.022076570925641043,
	-0.021235352210568686, -0.021105504649419432, -0.020558343393378815, -0.019995536681809787,
	-0.019302994967266396, -0.018673425689628532, -0.017911160097107182, -0.017146924414107579,
	-0.016169146025804878, -0.015454093878238897, -0.014572945587590445, -0.013681309167476641,
	-0.012321487239295818, -0.010923098397680979, -0.0054412984374982458, -2.3338565704497247e-18,
	7.2461942191086708e-19, 5.8210269175707871e-21, 4.4621169505047898e-20, 1.6158424094468659e-19,
	6.9964110342861094e-19, 7.4900232009425064e-20, -1.0937892642464355e-20, 1.7815094628247352e-20,
	-7.4380672325373771e-20, 5.2497309497851733e-20, -8.6337884079951013e-21, 4.2569766101073906e-20,
	1.4462023865077939e-20, 1.1950983824889065e-20, 2.5761460050515711e-20, 8.7688593763916438e-21,
	1.4170767914359481e-19, 1.0704990246417411e-20, 4.4738796182221244e-21, -8.2430020116910206e-22,
	1.150599956925702e-20, -7.5002585812640351e-21, -1.7876987996082003e-20, -6.9435409988457777e-21,
	1.0131049830777862e-19, -2.700280144945111e-21, 1.3098238523284446e-21, 1.1560114399178436e-20,
	-5.6352449982864126e-19, -3.1524344052448978e-20, -3.3618892174553201e-20, -3.222022347237868e-20,
	1.5760502600646598e-19, 6.547133249399934e-21, 6.8283878340982519e-21, -5.7045593098077e-21,
	-8.1601957216863836e-20, -1.3518165502145453e-20, 2.1214897577201643e-20, 2.6561674345851896e-20,
	3.6275436700790662e-20, -3.6280258153838236e-23, -1.5461188188277998e-21, -2.086855931370914e-21,
	-9.8742032683258353e-21, -8.559377813491585e-22, 1.1211700812319763e-20, -2.7200726305987769e-21,
	-1.0107506267163912e-19, -8.4979866246517697e-21, 4.7776162843994375e-21, -5.9469210321472542e-21,
	5.7235921520166077e-21, -4.005723129577141e-21, 1.3192783777379229e-20, 3.7450457008176514e-22,
	-8.5914820274412001e-20, -2.2019053336086401e-20, 4.5755707844807774e-21, 1.6250574071916397e-20,
	-4.0191942005449028e-20, -7.6445372558496719e-21, 8.5344828582405089e-21, -2.0372147824351117e-21,
	1.3907357563980397e-19, -3.1915777851274641e-22, -3.60414934936961e-20, 1.6625491499959963e-20,
	-1.5384144575564415e-20, -1.9595183138936111e-20, -6.4252347223142631e-20, -7.1688653980801057e-21,
	-2.5800663075472022e-20, -4.3420781747942278e-21, -2.6603865450587684e-21, 4.349229950858621e-21,
	5.0227434705408826e-21, 1.1498796788910978e-21, -8.0990772733444857e-21, 1.0862620030142478e-20,
	-8.7747681503572374e-21, -1.0592463040825298e-20, -8.9679666023386264e-21, -9.9919369595264175e-21,
	7.5728234826584665e-21, 2.8014298856940229e-21, -2.4530098802390388e-21, 4.2134133657538795e-21,
	-1.0830678142676806e-19, -1.3227165522163622e-20, -3.8906381269127793e-20, -9.4323575898889527e-21,
	-4.6820499431210814e-20, 2.7941093450548363e-20, -8.0044522185146374e-22, 7.9270962298379131e-21,
	-2.921832413515868e-19, 1.1068414252565827e-20, -5.5183361934808259e-20, -1.1974367505162201e-20,
	4.1351917721546296e-20, -7.4812817686487826e-21, 1.9325490041069799e-20, -3.8179851893863527e-21,
	-3.9213364341193581e-20, -2.3429267648083139e-21, 5.4550336319633288e-21, 2.2449570777479469e-22,
	-1.4088184192654116e-20, 5.4236472162379722e-21, -9.3044165528512825e-21, -6.65295159737819e-21,
	-3.5929758416648697e-21, -1.3382456194720866e-20, 2.5023795844585944e-21, -1.7650226105058062e-21,
	9.1576651310352798e-21, -9.256780012638653e-22, 2.2185540067849133e-21, 2.3049373510404581e-22,
	8.620679648596267e-20, 1.6707320159565907e-20, 2.2037321549252472e-20, 5.5568113441366186e-21,
	1.7056806730683365e-20, 2.8227004267977441e-20, -4.040202734524899e-21, 1.3972963951612098e-21,
	2.4689390519719329e-19, -2.8107616815904908e-20, 6.3022229630660431e-20, -1.7756102354539758e-20,
	1.8030485402083857e-20, 5.7697440208053896e-21, 3.5761351539056524e-20, 1.1547889644451071e-20,
	3.4734056810534514e-20, 6.111884140964553e-21, -4.9448447790916763e-21, -3.4052482295392173e-21,
	-5.4644972379429929e-21, 2.0463260006844603e-21, 6.2673639062497706e-21, -7.4880490990511431e-21,
	-2.4367425339970476e-20, 1.1747774476316996e-20, 1.2566247487746509e-20, 3.2801259053524182e-21,
	-1.044631231499227e-20, 1.5777778060772316e-21, -1.5999189019510741e-20, -3.7696495359193765e-21,
	4.0532371396314374e-20, 3.3709313951691504e-21, 4.2651769438189599e-20, -1.0867654590367418e-20,
	-7.2611406976543224e-20, -4.8143843221343449e-21, -1.2229667091731367e-20, -1.2459160018121654e-21,
	1.9504039261521556e-19, 2.1294472877251884e-20, -4.0146776399936763e-20, -1.7801590996136286e-21,
	-5.4018955190783709e-20, -5.1471320772557998e-20, -3.0850531350810522e-20, 2.9588418127316677e-21,
	-6.7333722701848649e-21, -3.4937092625779599e-21, 2.0469918278766158e-21, -9.6066687208626066e-21,
	-2.3530996444820923e-20, -4.0358988527207238e-21, -3.2514916468729901e-20, 6.6349237143400031e-21,
	-6.8402986762803558e-20, 1.7439653757686516e-20, 4.346392775248965e-22, 5.1874025012945017e-23,
	-3.4799953608470129e-21, 1.0945991045029125e-21, -6.5659484042704133e-21, -1.1708775580598767e-20,
	-2.5146237973108085e-19, 2.106862019035567e-21, 2.8088467631201899e-20, -2.9379419211592732e-21,
	-6.1140459283229944e-20, 1.0569205617807122e-20, 3.6323713596744297e-21, -4.9385012511396579e-21,
	-6.2783314814831413e-20, 3.6688016882876344e-21, 7.8566240927396139e-22, -4.5995590628125351e-21,
	-3.8685720277147148e-20, -7.4757577861992991e-21, -4.4885170670038213e-20, 2.5410661132870692e-21,
	-1.1586138517770968e-21, -3.1797777523169458e-21, 7.3627610834234453e-21, 7.1348182234163522e-21,
	-2.1833664013441667e-21, 8.0315752932946067e-21, 1.1091096565650414e-20, -4.2805903625552791e-21,
	-5.5597559334879571e-20, -2.6200581634064206e-21, -1.1016488586188499e-20, -9.5867632650715827e-21,
	-8.3766807740222251e-21, -5.958005444503299e-21, -2.3341792815255159e-20, -1.1407730410591669e-20,
	9.2774140765485849e-20, 2.4382247003887061e-20, 3.8549415990956308e-20, -6.0013295567688094e-21,
	-1.5118530180194859e-19, 2.0046184852233308e-20, 2.0666911459843665e-21, 1.5398038483636116e-20,
	3.3581337774649319e-19, -7.3958612802166532e-21, -9.7520159396361229e-20, -6.2738169270599763e-21,
	-7.4134508514717407e-20, -3.4072857401536742e-20, 6.0254318681529295e-20, -4.2200816956431229e-20,
	-7.3383002493817856e-20, -1.4325714428585669e-20, 2.2834789148802906e-20, -6.4342283037652349e-21,
	-4.5339623742596208e-20, -1.1444382905375855e-20, 4.3366189714351568e-20, 2.9953430323718565e-20,
	-2.6711695735508368e-20, -6.122757799170627e-21, -3.580116889014157e-21, -1.8141280257433357e-20,
	1.3266975989864417e-20, 7.5217446741648631e-21, -9.2548873730116495e-22, 1.1317549820976749e-20,
	-2.7568705743907631e-19, -2.846413085481275e-20, -9.2544583164260063e-20, 5.3031810806422158e-20,
	-4.5470575805614768e-19, 6.7543221755520078e-20, 5.7409255443203527e-20, 2.4694354213088443e-20,
	-0.023678907764682421, -0.022444898862591774, -0.023526050313113552, -0.024739369574049905,
	-0.027065859003866568, -0.028051865380570459, -0.029511551596283346, -0.030200333952938162,
	-0.032935602105284414, -0.033623499826057751, -0.034559506831225356, -0.035099454335707624,
	-0.035697544206079297, -0.036504723623543983, -0.036475244145853063, -0.036537538213200695,
	-0.037356042359706652, -0.03804709891609958, -0.03851372831981232, -0.038769023379377786,
	-0.038990294763452206, -0.039311214470013893, -0.039509948532032317, -0.039806542153925026,
	-0.039292976988454062, -0.039761144694007593, -0.039994370275220056, -0.04023672874196832,
	-0.040059901650472698, -0.040351528507331674, -0.040465567560220586, -0.04073042910910743,
	-0.039013479061229435, -0.039839176342771648, -0.04050379466908903, -0.040559649515589297,
	-0.040782307672606641, -0.04108880930154394, -0.041149262540397545, -0.041362377638124878,
	-0.040964124995546559, -0.041258269863345444, -0.041404996805002509, -0.041639076510613597,
	-0.041643337583700459, -0.041735731554279842, -0.042100487148800568, -0.042482248241894338,
	-0.041149757104585155, -0.0415009057844151, -0.041791425791567777, -0.041964703019393486,
	-0.041920575187914866, -0.042115067287369058, -0.042300348578115092, -0.042579030625556499,
	-0.042312199773406695, -0.042366724263954839, -0.042411556107926136, -0.042668835163358038,
	-0.043054502133900954, -0.042859849217270075, -0.043638262026417483, -0.044211859857159107,
	-0.040950802815671893, -0.041521791245942623, -0.042247849503300024, -0.04224050509911069,
	-0.042554889233102959, -0.042852589886127508, -0.042849507931553323, -0.042991575000647562,
	-0.042665745378117521, -0.04290850441094296, -0.043047023924751661, -0.043243582363286188,
	-0.04324131457624731, -0.0433258624393053, -0.043635656359960903, -0.043928074548553124,
	-0.042617705871088957, -0.042867667119017815, -0.043151845307536491, -0.04328588024629608,
	-0.043251170777347595, -0.043410856106655717, -0.043572864758458681, -0.043798877212901557,
	-0.04355627014448149, -0.043570683118652816, -0.043567908036632283, -0.043799018037214386,
	-0.044201848111069003, -0.0439999250562325, -0.044727854228959397, -0.045191098968209831,
	-0.04160847577409945, -0.042025887099035958, -0.042826252090599107, -0.042749831552061898,
	-0.043163639273409139, -0.043465155889555483, -0.043373888502803007, -0.043444467160783241,
	-0.04314010025616876, -0.043347885132274576, -0.043468493092501934, -0.043626368924914879,
	-0.043587966896596692, -0.043658210732813035, -0.043916545095196768, -0.044137183948089589,
	-0.042674043223592494, -0.042852401210239234, -0.043128667587444519, -0.043222380221428505,
	-0.043167289981280083, -0.043293193386301873, -0.043428573200893099, -0.043611550749191166,
	-0.043341700638325896, -0.04330610286104105, -0.043237409403294166, -0.043449488304889414,
	-0.04389462904874035, -0.043650983513551664, -0.044385219546223972, -0.0447815942333811,
	-0.040505169990536598, -0.040822210408427616, -0.041709440213873114, -0.041563603589286312,
	-0.042083832859817122, -0.042401226719523934, -0.042207484687151006, -0.042212846011796201,
	-0.041890766408722642, -0.042073326318769214, -0.04217529352320086, -0.042298976344555622,
	-0.04221580871205069, -0.042269390014594115, -0.042488542597521599, -0.042652681827889539,
	-0.040929286769069956, -0.041047362740626182, -0.041314047160384185, -0.041373644100618466,
	-0.041287588913942394, -0.041382245426213091, -0.041496989912039296, -0.041646332700333445,
	-0.041342812759603879, -0.041251976619863739, -0.041107906071691999, -0.04131004351161198,
	-0.041830474840975025, -0.041531023353848631, -0.042306466569881643, -0.042656291369465242,
	-0.037492928229030435, -0.037731607578343804, -0.038693716583559516, -0.038489683046592109,
	-0.039121290162743967, -0.039461545636469801, -0.039162976762086313, -0.039111927565978942,
	-0.038767410747663385, -0.038930425186149538, -0.039017241462206323, -0.03911103630021761,
	-0.038984478263570814, -0.039024966138595636, -0.039209488627365612, -0.039325592993138918,
	-0.037310666506527104, -0.03737593933825667, -0.037628455878486435, -0.037661250711597649,
	-0.03754359506674057, -0.037609570984032378, -0.037709598370776712, -0.037831393636091684,
	-0.03750354137945431, -0.037358858447180426, -0.037138348344832053, -0.037335585328980792,
	-0.037949278878454375, -0.037595805401286667, -0.038420003984874808, -0.038729098714022844,
	-0.032573008869076291, -0.032755356805772171, -0.03378068509693255, -0.033528521302707108,
	-0.03428124568307335, -0.034651263042067233, -0.034243542626585466, -0.034142477867871092,
	-0.033786988200427782, -0.033937268727586317, -0.034013353552044705, -0.034079943488650871,
	-0.033907856768229834, -0.03394093261931138, -0.034088252071530122, -0.034159757922268975,
	-0.031815107957894002, -0.031831054988941156, -0.03207332470090854, -0.032081829010694209,
	-0.031935944824938292, -0.031976906065836856, -0.032062372498174549, -0.032159781840186787,
	-0.031792368890538006, -0.031589905304925621, -0.031289849570365943, -0.031485864967426822,
	-0.032207809918789659, -0.031790063341993538, -0.03268391880927364, -0.032959935931124555,
	-0.023355057800868849, -0.02349537129296151, -0.025255121416569166, -0.024735497048805476,
	-0.026425567657349748, -0.027123426148977246, -0.02611910125917993, -0.025800800157951664,
	-0.025762727456236936, -0.026036428840257159, -0.026193586470184976, -0.026194576739543295,
	-0.02562360658494606, -0.025763455041181358, -0.025687767493822882, -0.025638744462583709,
	-0.020460549572292014, -0.020390197354301445, -0.02105523421551804, -0.020888781852971015,
	-0.020704979489692962, -0.020781188311642367, -0.020709808670628244, -0.020759087312688711,
	-0.019100286168998552, -0.018511303692034849, -0.017718591764722121, -0.018048157460852848,
	-0.019534957081203844, -0.018379837585887258, -0.020479750554257929, -0.020989505700373747,
	-4.6264853628342145e-06, 5.7377024143403527e-22, 1.0432248744773932e-21, -1.9581556866660155e-21,
	1.8522005307806037e-20, -1.4688659793314194e-21, -2.917153441368028e-21, 4.3875767404776675e-21,
	-1.743508597740572e-20, -6.2835864253041204e-23, 9.7240159792266288e-21, -2.6834092451727346e-21,
	-2.5549469543156752e-20, 8.0823367051014981e-22, 1.5225371189923618e-21, -3.2608163643027895e-21,
	6.352264502972962e-21, 4.9964845971084328e-22, 1.0236492851524403e-21, -2.759722540411094e-21,
	-2.3145354289457482e-22, 3.9413126969913142e-21, 2.1237429089817972e-22, -2.0152753587373471e-20,
	2.6177661889857926e-20, -1.7094237054604076e-21, -1.5746238317945481e-20, 1.5004314534654787e-21,
	-2.5120443922725239e-20, -6.5461193440242635e-21, -3.6161042740224405e-20, -1.5889138062375855e-21,
	-6.7954017682574485e-20, 1.8164814429699932e-21, 2.4198708512086523e-20, 1.5602873951202417e-21,
	2.2377738825734938e-20, 1.303673986320877e-20, -1.2881641068516318e-20, -1.3876772309168361e-21,
	3.6582791532314805e-21, -2.8253376210010621e-21, 1.7394264158254785e-21, 3.1635378110503894e-21,
	4.1008517996995838e-21, -9.9132682539358445e-22, 1.4911143746764737e-20, -3.6253454233617919e-21,
	-3.2950101283141319e-20, 2.6367512382500905e-21, -1.0891491860023679e-22, 5.2809065320555084e-21,
	3.5898592424308845e-21, -3.4382194652973457e-21, -9.0075011853900589e-21, 1.5674411666437174e-20,
	-1.8305503323828882e-20, 6.6108898525072259e-21, 6.2892225932474311e-21, 3.2190523425027786e-21,
	-1.9381421854718988e-20, 8.7789847462069963e-21, 2.4977462311005914e-20, 1.7763290410995007e-20,
	3.7928819005931698e-20, -2.8633010281040391e-21, -1.514655850356751e-20, 6.0348919789935454e-21,
	-1.6550434926485e-20, -1.0216433179721701e-20, -5.5647786932110822e-21, -1.5197056470999696e-20,
	7.0524834720910387e-21, 3.8562604409422004e-21, -4.2664961198574831e-22, -1.2322560319888682e-21,
	3.5830541175192507e-21, 6.6374130678769496e-24, 1.0120575911166576e-20, 1.5386665541419324e-20,
	-2.8091878957360201e-20, -3.1386695944875671e-21, 9.6454074757591485e-22, -2.5800917785870926e-21,
	8.2125491559086279e-21, -5.1269982697597681e-21, -4.9499259810608778e-21, -1.1385750431476806e-20,
	1.3167300675128481e-21, -4.3387164600889658e-21, 4.0141483798795414e-22, -4.9590700617034403e-21,
	5.6959836010791377e-21, 1.1355806430080419e-20, 7.7133744024122182e-21, -3.5435698126313518e-20,
	1.0082359615735387e-19, -1.7718202622721057e-21, -7.1106141725904367e-21, 3.336151015131215e-22,
	1.8715158375280351e-20, 5.0465056307125352e-21, -6.7763701427581199e-21, -8.9255569731428991e-21,
	-9.0262445500907475e-21, -3.2424456628554648e-21, -4.4952814597202583e-22, 5.3885395085051077e-21,
	2.7254609155527337e-21, 2.3793691461273447e-21, -3.3677301598548819e-21, -1.3171311253158496e-20,
	-1.2573925118191149e-20, 1.305004790937118e-21, -6.3794340789098396e-21, -7.2466820977284925e-21,
	-8.3019026797984982e-21, 3.7894505106844698e-22, 1.8906501446701152e-21, -6.3982634064434706e-21,
	8.3521848310939596e-22, 5.1193130571994881e-21, -1.6571807293404978e-21, -2.8062692985763294e-21,
	1.9365769498305539e-20, -1.5834754376428274e-21, 2.0274746293134482e-20, 6.7711712966094565e-21,
	-6.6375611971588926e-20, -7.6645992798624518e-22, 1.8516774106727913e-21, 2.8930777870754688e-22,
	-8.1459678639422295e-21, 1.4309153923941704e-20, -3.6549376760345763e-21, 1.1562495082004113e-20,
	-5.6579864049602707e-21, -1.7480623908317366e-21, 7.9132808750438193e-22, -5.8308753300196204e-21,
	1.2589254755216147e-22, -1.9934099903610666e-21, -5.0914357767791824e-21, -1.3663027281428214e-20,
	-3.6946488226330815e-21, -4.7334236226990749e-23, 4.9718526498735831e-23, -3.5612675676075582e-21,
	-1.4618564944464724e-21, -4.0899302010871445e-21, -4.0701480049537102e-21, -3.0177569552246695e-22,
	4.4379541747524377e-21, -2.0319768838131901e-21, 3.2448448348695024e-22, 1.0371778048411907e-21,
	-2.6360494401782892e-20, 1.7679821762049472e-21, 1.20755008818717e-20, 3.2748765308189103e-20,
	4.8911023387963508e-20, -2.6875189667016919e-21, 3.3165081635650451e-22, 8.6619647328396784e-22,
	-9.0793905996524168e-22, -9.1562945574927378e-22, -2.4011617208836623e-23, -3.3411565176110346e-21,
	-1.8853953833816769e-21, 1.5283433632355864e-21, 4.7137246876827667e-22, 9.6488213311637609e-22,
	-1.4248387747357925e-21, -3.4000361037491771e-21, -9.7586914997513968e-21, 2.2580450527190937e-20,
	1.3444400395133615e-20, 8.5856009716147684e-22, 3.6922935448002735e-22, -5.8506387483820921e-21,
	2.5257009646970862e-21, 2.0975822401521011e-21, 1.716806092290644e-21, 1.1534508463233045e-20,
	-2.5404418170715739e-21, -9.6841527585676167e-22, -3.5965449726493152e-22, -4.7711431560254274e-21,
	-2.1382433979976067e-21, 1.7329628627174535e-21, 4.1498638265437908e-20, -2.2242375537343764e-20,
	4.7510163609967332e-21, 1.6805726533845363e-22, -1.9178866526749012e-23, 3.091293493248421e-23,
	4.7614434721075869e-22, -3.1709083089653592e-22, 6.3701463557620625e-21, 2.4256856781196297e-22,
	-4.148901544652648e-21, -7.7540885577959645e-22, -8.2703291891146117e-22, 5.3221589114477784e-21,
	-1.4326713560907123e-21, -1.5810926643521966e-21, 7.8585123957824292e-21, -2.8419891291854117e-20,
	-2.7182956284025831e-20, 1.0089556374257564e-21, 6.2301591020955696e-22, 2.7575903996677673e-21,
	-9.683988838581075e-22, 3.310542519503382e-22, -4.878572702247208e-22, -1.3274824777437229e-20,
	-6.7060899871014765e-21, -1.4374526263122638e-21, 6.7437334512303787e-23, 4.5502090885605044e-21,
	4.1492297093232766e-21, -1.2329803461027663e-21, -7.5671027599698312e-21, 3.1468578807230762e-20,
	-2.7970758584731413e-19, -1.8862235252576709e-22, -1.3347964608031222e-22, -2.738248731523533e-21,
	-1.070643490224676e-21, -2.4946870031825794e-21, 4.4143294256241005e-21, 2.337751386005459e-21,
	2.0531619743844464e-21, 3.3495421862622907e-23, 4.1276110903260251e-22, 4.3050831253349685e-21,
	4.8152526835832763e-21, -9.3722289286570012e-22, -8.696860964155736e-23, -8.8897723723307502e-22,
	-1.1238305357889053e-20, 8.9253911479455327e-22, 4.4527000204005813e-22, -4.7636593244364261e-21,
	-4.7296747590002727e-23, -1.2078224154780556e-21, -1.4810432613950486e-21, -4.2363207302621403e-21,
	-9.2278367541746381e-20, -1.3038749327466634e-22, -2.6074829342520874e-22, -3.0785064301170424e-22,
	6.870359315551711e-20, -2.0623087819970339e-20, -9.7472764053055849e-21, -1.3157819292378916e-20,
	0.014427341604306736, 0.01490163879121457, 0.015376540805657254, 0.015836458943759912,
	0.016317891566529175, 0.016757453887239843, 0.017224146614016968, 0.01767093942211867,
	0.018164036086314294, 0.018572177273184939, 0.019027990386103935, 0.019464331804474967,
	0.019931370821043605, 0.020349330485151518, 0.02079688251745631, 0.021223383294803447,
	0.021723471856087501, 0.02209826265369947, 0.022539824816809984, 0.022959819260730888,
	0.023416315568198971, 0.023816131632056523, 0.024250860438348169, 0.024661756975811879,
	0.025128541754063257, 0.025503542665033373, 0.025931877698517496, 0.026333799317724661,
	0.026762344115592383, 0.027154602587948801, 0.027558195814943676, 0.027943818803715208,
	0.028324462896552542, 0.028771348961575318, 0.029171953966842721, 0.029548648265039178,
	0.029965028351123277, 0.03031134378869894, 0.030700072832457116, 0.031056272843674751,
	0.0314897806351273, 0.031786187772267743, 0.032154658352290651, 0.032490057046191713,
	0.032870392546921638, 0.033175458375540472, 0.033516718588773947, 0.033822653235008104,
	0.034238917956842113, 0.034470356853551647, 0.034789518922087925, 0.035074642951638077,
	0.035407964350988717, 0.035657180485537593, 0.035949692343836659, 0.036204105847597208,
	0.036542723785086134, 0.036737195172754207, 0.037003913094588954, 0.037232399364316375,
	0.037499799955625288, 0.037705839026304117, 0.037923984502958447, 0.038106911225870149,
	0.038236212257718234, 0.03857558742362098, 0.038781183634798211, 0.038958207261627513,
	0.039183664409667439, 0.039322067677111397, 0.039510230106947007, 0.039658411539779302,
	0.039902562245470376, 0.039984710633277597, 0.040151096342315014, 0.040279333170775977,
	0.040461814595433437, 0.040561593696375277, 0.040699822975531839, 0.040799607205370077,
	0.041029884573544, 0.041064881560897902, 0.041192986734967275, 0.04128726207516098,
	0.041440003351616572, 0.041503298684017614, 0.041618675172897412, 0.041695873845401854,
	0.041873610807556493, 0.041897816540067294, 0.042004429965578509, 0.04207541889870349,
	0.042193127151014378, 0.042254929458701317, 0.042325102697678148, 0.042362308625650685,
	0.042333293256917773, 0.042586744721019407, 0.042672852738623576, 0.042735383605007851,
	0.042854900786498354, 0.042889232793750003, 0.042980038165677852, 0.04303494098006843,
	0.043194899912747962, 0.043195030559944468, 0.043286016050280034, 0.043342755060939403,
	0.043460442170264027, 0.043499418183006906, 0.043580714411305767, 0.043627094554373198,
	0.043806887358235208, 0.043805648777075511, 0.043896019459810448, 0.043956221651855726,
	0.044079954152677646, 0.044116879404680537, 0.044210096610491821, 0.044267734120842776,
	0.044429367968698182, 0.044442638061428709, 0.044539628929233452, 0.044603447331181004,
	0.044715745169062959, 0.044777144082588788, 0.044844124960130329, 0.044879611927021293,
	0.044837390161056881, 0.045120881179821153, 0.045212867313948156, 0.045282868701372929,
	0.045410884324801636, 0.045453744191188361, 0.045554734208862524, 0.045619102453099747,
	0.045788856662102487, 0.045799624349531144, 0.045900362084489561, 0.045965983775490028,
	0.046092465008779816, 0.046139400700556665, 0.046226586036481374, 0.046277137562716383,
	0.046456332714965624, 0.046465254098061119, 0.046556076507082059, 0.046614527098302785,
	0.046735233662494768, 0.04676623423009544, 0.046850776139629943, 0.046896677665623221,
	0.047042407638952878, 0.04704186325583113, 0.047119335198427745, 0.047159504887082329,
	0.047242368944725374, 0.047275921111278089, 0.047305609142022996, 0.047301325517634024,
	0.047188078503207297, 0.047469413508558975, 0.04751069315112795, 0.047526832410752839,
	0.047596028327144067, 0.047575581908942031, 0.04761027991675397, 0.047602768257837845,
	0.047695086191113942, 0.047626626661212895, 0.047641870043157557, 0.047617320522228154,
	0.047648730768207602, 0.047596956123307006, 0.047579492129234555, 0.047521069442824491,
	0.047577078815981021, 0.047481476176625001, 0.047450218631474632, 0.0473824759018171,
	0.047371985016650957, 0.047269411955201769, 0.047214972739749936, 0.04711901073789429,
	0.047112585577779448, 0.046968422749690951, 0.046893606989893699, 0.046778762348014487,
	0.046699011981367576, 0.04657453175835246, 0.046439714103467485, 0.04627236521423133,
	0.045962407299090478, 0.046118546402736972, 0.045990569580368602, 0.045838066070725159,
	0.045732973248191602, 0.045543672095398703, 0.045410212323746112, 0.045235789155918679,
	0.045150633484187512, 0.044922122788905894, 0.04477153657153659, 0.044586100249749634,
	0.044454697496205182, 0.044247626676225747, 0.044077240903756726, 0.043872294672747406,
	0.04376239801725916, 0.043542965960006189, 0.043372335315276116, 0.043172108938838612,
	0.043026962209890704, 0.042803852869625889, 0.042628324498134806, 0.042420639128695384,
	0.042290079564232641, 0.042051586766967686, 0.041875941799362652, 0.041666915757596928,
	0.041487376924112987, 0.041277027669569644, 0.041058924124319593, 0.04081807942932595,
	0.040321558489812087, 0.040490712104062139, 0.040283638496798765, 0.040047303577495599,
	0.039853232536070038, 0.039576666080625912, 0.039332237991900151, 0.039043926762685484,
	0.038819651837187726, 0.038454942352270115, 0.038128619512606474, 0.037741249626160628,
	0.037357736070115742, 0.036877946634728917, 0.03637519629052504, 0.035792329375476606,
	0.035150005691645336, 0.034457199880660462, 0.033690740960842756, 0.032806615566795608,
	0.031881976228900738, 0.030803909712867356, 0.0296638936064921, 0.028426900070776775,
	0.027112205010779346, 0.02577638285404589, 0.024408231792940764, 0.022942661727371035,
	0.02078690742555124, 0.018424019647448175, 0.0092038386565416342, 9.0391390840348173e-05,
	0.035846435904358237, 0.03417273755820277, 0.031858256000307339, 0.03265022248132355,
	0.031200884404830723, 0.029882178219397957, 0.032130514627767941, 0.032497568907905387,
	0.035936824702237323, 0.035901904764284766, 0.036111045005087342, 0.036110868252772592,
	0.036438154469038503, 0.037203644985819177, 0.035800614880071427, 0.035770778243766156,
	0.045123944195097652, 0.045637188179782386, 0.04563975187465754, 0.045680375179393794,
	0.046587636662063531, 0.046862197309548922, 0.04650536810703345, 0.046413521426906156,
	0.046175868872943379, 0.047780309904732518, 0.048779803029926655, 0.04848996248650151,
	0.044676856750270527, 0.047009994452183262, 0.042781667699622751, 0.042503896213354771,
	0.06074522898284198, 0.05993943660256381, 0.058966581348543427, 0.059335339036295447,
	0.058581369051214013, 0.057964155156183812, 0.059070455401948677, 0.059268426271196828,
	0.060349668320736218, 0.060235311928966299, 0.060292932519543159, 0.060334970073555677,
	0.060788949453049024, 0.061038195858079992, 0.060638975115975373, 0.060642616858662714,
	0.065435451855318488, 0.065540970252728412, 0.065417313373136318, 0.065515489839674548,
	0.065992486546964588, 0.066070017055840327, 0.066042689739733929, 0.066025452099556028,
	0.066693659460560689, 0.067570246679154441, 0.068084556031773283, 0.067969802155376888,
	0.066140326840439329, 0.067644544998029243, 0.065011537211186465, 0.064754786574979933,
	0.077875542839391271, 0.076944090709976931, 0.076055898348544079, 0.076426616020860316,
	0.075816154368847519, 0.075249409149934304, 0.076284623319270425, 0.076478473172318498,
	0.077595614784080974, 0.077467031194772523, 0.077549283369251126, 0.077597589978712495,
	0.078079896194297685, 0.078353995093623674, 0.077935888642048021, 0.077917004102787624,
	0.082549034700582863, 0.08256069356371229, 0.082446633865052465, 0.082562390230530497,
	0.083067580920813788, 0.083128404018007945, 0.083141385620896291, 0.08312585076567551,
	0.08391550969241196, 0.084752811257890123, 0.085225225418448278, 0.085137142157568235,
	0.083485945199757772, 0.085036322773534442, 0.082356209385776119, 0.082002479576524415,
	0.094457556406182683, 0.093348454135257442, 0.092538290076717614, 0.092917705178907253,
	0.092463153098434905, 0.091942547259713486, 0.092910895722608078, 0.093099516879190769,
	0.094308258114790031, 0.094156047107291557, 0.094272115614050064, 0.094324744614261019,
	0.094836991887716313, 0.095138477611886638, 0.094690255243589469, 0.094630777954864242,
	0.099171204921727263, 0.099071278815454522, 0.098982884612513963, 0.099115090753359128,
	0.099665334164510996, 0.099709731556126002, 0.099763152469195648, 0.099745502164204414,
	0.10065542048093214, 0.10143247499132449, 0.10187682534649962, 0.10181454130417686,
	0.10035778430422244, 0.10193399313410738, 0.099242913132521468, 0.098761272495186153,
	0.11068282594818525, 0.10933607886691687, 0.10861664356981261, 0.10900565189472604,
	0.1087106114660204, 0.10823400938653933, 0.10914076273613513, 0.10932260849343316,
	0.11063872867199213, 0.11044213564241684, 0.1106009273854959, 0.11065898651396798,
	0.11122544241343049, 0.11154202790115063, 0.11108866120248698, 0.11097881537494275,
	0.11551501093815698, 0.11524689809852413, 0.1151986830066625, 0.11534807178783593,
	0.11596830518170649, 0.11599198071700641, 0.11609532477848371, 0.11607073024899148,
	0.117159449301465, 0.11783862003858941, 0.11827743330023467, 0.11824138136490464,
	0.11701863233513043, 0.11859544802160066, 0.1159423403538901, 0.11528758081899454,
	0.12713330727440875, 0.1253836060437763, 0.12474490395113869, 0.12515946008256848,
	0.12502342924357612, 0.12456806266285814, 0.12546227980691244, 0.12564366486103881,
	0.12716897234031843, 0.12687512470536069, 0.12709942582675199, 0.12716588572480456,
	0.12785337774491592, 0.12817758997100964, 0.12773820135851074, 0.12755524226336523,
	0.13244406965222869, 0.13188879905544487, 0.13190532840692595, 0.13208317236692274,
	0.1328535402423679, 0.13285195474620348, 0.13303288826464479, 0.13299497620296161,
	0.13444416504855203, 0.13499025874282447, 0.13548537875499569, 0.13548007186538949,
	0.134521189666369, 0.13614299682437711, 0.13347453889476904, 0.1325546469695765,
	0.14552009579907105, 0.14293383840181259, 0.14237379419387058, 0.14285252892223699,
	0.14294754495969728, 0.14248028721898209, 0.1434516394882358, 0.14363846665555596,
	0.14564699443293533, 0.14518474473943963, 0.14554939376588993, 0.14564631217813906,
	0.14660194485131189, 0.1469683861355835, 0.14654518001904537, 0.1462385367018115,
	0.15219935399318454, 0.15112340023622359, 0.15128805163886749, 0.15152173955968179,
	0.15262765293254937, 0.15261131359363603, 0.15292581195795646, 0.15286953955289534,
	0.15496325140246767, 0.15534049788423146, 0.15600432972831646, 0.1560518227212527,
	0.15538445730398492, 0.15714638340737594, 0.15437044788729198, 0.15303314093440953,
	0.16276805890391341, 0.16251840229655662, 0.16289779629692178, 0.16305550348494163,
	0.1642020411264139, 0.16422866223727894, 0.16453346053771981, 0.16441466543265801,
	0.16696638645054088, 0.16682445310717425, 0.16724344272330816, 0.16734427995987722,
	0.16766298014445222, 0.16829325165008077, 0.16742187592315486, 0.16687953920083504,
	0.16512288963237032, 0.16845688534642045, 0.16865504530796252, 0.16828044311295723,
	0.16677992775596756, 0.1671468334696925, 0.16563649133258579, 0.16524712384800627,
	0.15590928893002906, 0.15816670330941082, 0.15472797552770554, 0.15330196453506151,
	0.14686326166481037, 0.14405293551931359, 0.14457844899987737, 0.14637741975709964,
	0.14319267138937261, 0.14800266567567266, 0.15302833931245985, 0.15929359824352923,
	0.16479688904934012, 0.17096472405953098, 0.17690608972231486, 0.18218474437989893,
	0.18625003640191459, 0.19033037239547954, 0.19389295317569122, 0.19708465947658479,
	0.19987919020868619, 0.20245491068719507, 0.2048674826396944, 0.20716690594147941,
	0.20983996486288065, 0.21189975355583771, 0.21374377990507987, 0.21550928108393436,
	0.2173113146227004, 0.21899090036735211, 0.22054429215793125, 0.22208740342076833,
	0.22359662798617114, 0.22522038735667382, 0.22686193433563884, 0.22828104907156468,
	0.22943214561547123, 0.23098267856512258, 0.23216887448771625, 0.23356144965114284,
	0.23785773509109043, 0.23914403153445715, 0.24031337292750296, 0.24178607732625829,
	0.242957031166882, 0.24422419285221661, 0.24581453164628633, 0.24723405036683743,
	0.24874002425017747, 0.25008648826251195, 0.25146300026288726, 0.25284096672506906,
	0.25430089748255458, 0.25568943017179968, 0.25703611058469411, 0.25839962932338345,
	0.26060105789979549, 0.2620119008592785, 0.26336041109578262, 0.26472822168274629,
	0.26617763345853013, 0.26755978195759583, 0.26888965129808484, 0.27022856941663354,
	0.27160149896339514, 0.2730988263533351, 0.27458268295371824, 0.27588640093283556,
	0.2768803092967792, 0.27842539164847924, 0.2794475611907557, 0.28075070856874368,
	0.28488467524002736, 0.28603798926283625, 0.28714516818219366, 0.28854726240621975,
	0.28964829293975852, 0.29085547032628351, 0.29236904737067193, 0.29372572384353435,
	0.2951363546107888, 0.29641791043112803, 0.29772231162234475, 0.29903165920247443,
	0.30040947667632101, 0.30171862187126286, 0.30299962365177041, 0.30429604754806588,
	0.30634278620342131, 0.30766924434619058, 0.30893595946970176, 0.31022068523789725,
	0.31157017156692085, 0.31286426964970498, 0.31410711703701427, 0.31536208194791798,
	0.31662880725784903, 0.31802181671841145, 0.31940326027446247, 0.32061518371733033,
	0.32153542708508209, 0.3229576306972573, 0.32391592191559698, 0.32512944952043565,
	0.32896908901283672, 0.330040007958324, 0.33105421303493865, 0.33234979806835158,
	0.33334729767141685, 0.33445472379832203, 0.33585274154886174, 0.33710393680452844,
	0.33838564209141825, 0.33956149279253534, 0.34075563750232252, 0.34195715902813967,
	0.34321950019177033, 0.34441514433673814, 0.34559256777583258, 0.34678454265546643,
	0.34866260458276266, 0.34987924905426621, 0.35103627970359214, 0.35221147321670487,
	0.35344292915814041, 0.35462602308028346, 0.35576066269692103, 0.35690790713867293,
	0.35805645835047817, 0.35933171953811532, 0.36059683855953667, 0.36170243195326823,
	0.3625297185927901, 0.36383098435043776, 0.36470320793150202, 0.36581910526099359,
	0.36938684447580622, 0.37039036909133044, 0.37130829629125639, 0.37249604080140125,
	0.37338985769366456, 0.37439730452070091, 0.37568508130114703, 0.37683314473952167,
	0.37799709795768249, 0.37907257950512629, 0.38016384037589235, 0.38126495121593745,
	0.38242245842716449, 0.38351559447792288, 0.38459777204629098, 0.38569462954605321,
	0.38743210540956136, 0.3885535359925163, 0.38961547580664124, 0.39069443078989791,
	0.3918241891105036, 0.39291187357185037, 0.39395355153337891, 0.39500948023703053,
	0.39605527794367068, 0.39723666555171905, 0.39840568961634676, 0.39942284918577409,
	0.4001667289117371, 0.40137257429355261, 0.40217021079051796, 0.40320680977972412,
	0.40657294034193037, 0.40751632171230601, 0.4083613326888666, 0.40946041103594899,
	0.41027290380968151, 0.41119989354550474, 0.41240014198611341, 0.41346509220352518,
	0.41453884392690127, 0.4155320559815765, 0.4165419660329005, 0.41756376187949434,
	0.41863659118856877, 0.41965138927440843, 0.42065748861905145, 0.42168332427765737,
	0.42329778905497806, 0.42435561188728849, 0.42534679025880556, 0.42635119641278307,
	0.42740204507580953, 0.42841659874901478, 0.42938666931000319, 0.43037247324741662,
	0.43133015894326876, 0.43244488826973088, 0.43353982119165629, 0.43449007205233747,
	0.43516530437324669, 0.43630283398063746, 0.43704341424435161, 0.43802358847530809,
	0.44113189661266966, 0.44212200416060987, 0.44291674941756631, 0.44394741422394474,
	0.44469784658456019, 0.44556657323089766, 0.44669987095649955, 0.44770142942402535,
	0.44869460953632184, 0.44963202940965052, 0.45058090749127672, 0.45154390836055919,
	0.45255696463160155, 0.45350877714812787, 0.45446269302428316, 0.45542930611653154,
	0.45695757521886354, 0.45795594378972809, 0.45889246993120875, 0.45983963956164176,
	0.46082982935926525, 0.46178854524135132, 0.4627043948311888, 0.46363672482231078,
	0.46453865948101497, 0.46559201693482433, 0.466628814759175, 0.4675272275324831,
	0.46815567120169677, 0.46923073054234271, 0.46992919187431542, 0.47086057065377379,
	0.47315119285383511, 0.4750345062988926, 0.47573781599392989, 0.47673474532994714,
	0.4773473443273254, 0.47813993594222637, 0.4792635847775622, 0.48021702004687361,
	0.48108132793892616, 0.48194911073093227, 0.48282087191722795, 0.48372140386403822,
	0.4847026093394986, 0.48556603776808843, 0.48646851495865634, 0.48736357637659616,
	0.48878472274610435, 0.48991887381633303, 0.49074438783811508, 0.4915987240947054,
	0.4924689406789351, 0.4933146408802776, 0.49412463116311245, 0.49494045919999202,
	0.49569315493814869, 0.4967510356545376, 0.49768970560871556, 0.49846319058518462,
	0.49872966677767827, 0.4998945110925157, 0.50026332565172582, 0.50112662763887916,
	0.50489796237365914, 0.50463036774440073, 0.50580723148449991, 0.50685302089088058,
	0.50789814897563668, 0.5088690136577626, 0.50992251268089184, 0.51089914087490695,
	0.51211112162960282, 0.51291558263438242, 0.51393430456450084, 0.51490447256501637,
	0.51602595367531179, 0.51697356568868846, 0.51789481716363872, 0.51870058632877247,
	0.52058995581703782, 0.5209263409806818, 0.5218974958749063, 0.5227963191270073,
	0.52387648907114437, 0.5247298300642439, 0.52566156321017754, 0.52649181915985044,
	0.52779421604794929, 0.52854999582277584, 0.52952183800543828, 0.53037761096003211,
	0.53125298668641951, 0.53227391028419491, 0.53283240050552694, 0.53331929454301008,
	0.53744152967416314, 0.53642733425798761, 0.53731984327884652, 0.53818024622559202,
	0.53918349214609851, 0.53995659800892082, 0.54089767585420778, 0.54169260546277109,
	0.54305363286445474, 0.54364458165927732, 0.54457529346727096, 0.54539898350608562,
	0.54642427986383102, 0.5472696015864964, 0.54803684348510262, 0.54869141631016161,
	0.55087488778402249, 0.55099997515284016, 0.5519205937254158, 0.55272531331424357,
	0.55380194809859606, 0.55457438414951199, 0.55542274534030811, 0.55615674132206516,
	0.55742841183624192, 0.55808986867971366, 0.5590276462279502, 0.55980140211961771,
	0.5605732503395493, 0.56155862821270364, 0.56197207001241511, 0.56231680243874882,
	0.56665508295126299, 0.56549330836135725, 0.56633763200389609, 0.56712287727353905,
	0.56810347910263315, 0.5687993584120703, 0.56967138997650624, 0.57038181080921013,
	0.57174240683213129, 0.57223046065632144, 0.57310390004896405, 0.57385323236687302,
	0.57483223301680453, 0.57560755144962372, 0.57629666539862734, 0.57685745907787145,
	0.57902199244384445, 0.57905648160538004, 0.5799169617409794, 0.58065144099407029,
	0.58167700885870055, 0.58237739635974939, 0.58316386324814029, 0.58382682640855332,
	0.58505491820876876, 0.5856455873986105, 0.58652010831630286, 0.58723121486063201,
	0.5879537542765787, 0.58887692305494233, 0.58923211860752689, 0.58951308888982556,
	0.59358552274511811, 0.59252699010469889, 0.59331834589809718, 0.59404685951563851,
	0.59497271205699631, 0.59561913181916926, 0.59643444462643636, 0.59709483433261068,
	0.59837424183406762, 0.59883019354143174, 0.59965106741006413, 0.60035397733548579,
	0.60127480582655646, 0.60200367620544892, 0.60265462524060087, 0.60318534546676916,
	0.60517818470162221, 0.60523902614449288, 0.60605254406972664, 0.60674816590289471,
	0.60771272002312882, 0.60837969148098192, 0.60912510628807492, 0.60975852463260016,
	0.61089939935055027, 0.61146925791275419, 0.61229740930127841, 0.61297737508537375,
	0.61366863258316195, 0.6145384965246069, 0.61490422463997074, 0.61520259201333338,
	0.6188849335491643, 0.61796122236424245, 0.61872098446835055, 0.61941834617754787,
	0.62029895840131699, 0.62092690298686148, 0.62170074738547532, 0.62233853865791888,
	0.62352695385378176, 0.62398287654364015, 0.62476607495804226, 0.62544342718264523,
	0.6263136718534259, 0.62701419507868317, 0.62764590612865645, 0.62816922759771865,
	0.62997881516109255, 0.63007706743833647, 0.63085505344648507, 0.63152546956772027,
	0.63243588548496033, 0.63308096088630217, 0.6337958583597596, 0.63441047109345494,
	0.63547243845548407, 0.63602805290124476, 0.63681475067782367, 0.63747119484455983,
	0.63814040891314994, 0.63896338846090761, 0.63934171391939265, 0.63965470057046703,
	0.64290881320331705, 0.6421668428575128, 0.64289658067630451, 0.64356447629339519,
	0.64439965819227707, 0.64500778132612346, 0.64574275523301772, 0.64635698804297714,
	0.64745276963520382, 0.64790658891923847, 0.64865015052072794, 0.64929994243084443,
	0.65011940332554718, 0.65078839714899506, 0.65139876114194895, 0.65191144541049495,
	0.65350995814628299, 0.65367170755353976, 0.65440877362872141, 0.65505027926123227,
	0.65589788002713867, 0.65651833182889763, 0.6571978204769332, 0.65779130391926055,
	0.65875279347930193, 0.65930094191016897, 0.66004047417156098, 0.66066974575111548,
	0.66130659659119517, 0.66207380420166295, 0.66247454628637337, 0.66282220043264495,
	0.66545326931217763, 0.66510263062286867, 0.66578645723030772, 0.66642654138889745,
	0.66718302588749767, 0.6677707129184407, 0.66847196218955796, 0.66907144525871998,
	0.67001291635028337, 0.67049565278821133, 0.67119027119312391, 0.67181778575006235,
	0.67257203465475968, 0.67321079824657359, 0.67381567100943163, 0.67434796986984247,
	0.67559879935285883, 0.67593341747398361, 0.67662346615081792, 0.67724651438567585,
	0.67800709885838506, 0.67862091523636736, 0.67926762970152799, 0.67986188968702077,
	0.68065874158240147, 0.68124264811241075, 0.68193891391112771, 0.68255536951333673,
	0.68314973209288954, 0.68385916646952871, 0.68433453088514207, 0.68479791561134762,
	0.68671048246134447, 0.68682582439674456, 0.68745996722309444, 0.68809346095702428,
	0.68874708947587748, 0.68933475288696366, 0.69001986444224528, 0.69063395756819546,
	0.69137829874056289, 0.69193252426540541, 0.69258450110267877, 0.69321010175263109,
	0.69389774507854862, 0.69452314868414766, 0.69514513197614014, 0.69573285779975758,
	0.6966209033626376, 0.69715591850388159, 0.69780728709966722, 0.69842923095413467,
	0.69910613689902479, 0.69973017521607961, 0.7003549350635907, 0.70096627660785682,
	0.70160094778242443, 0.70223670394718973, 0.7029019146211537, 0.70351547490271082,
	0.70406394699825081, 0.70473344198275856, 0.70527439337629227, 0.70585189613856791,
	0.70726931003781202, 0.70764966755691672, 0.70822525665597857, 0.70885058231983111,
	0.70939573328432048, 0.70997811137781464, 0.7106355865761701, 0.71125443871932181,
	0.71182336307944227, 0.71242077253095881, 0.71302348432917395, 0.71363291766910364,
	0.71424807229260401, 0.71484795826160907, 0.71546099322957868, 0.71606965938351352,
	0.71673031087403472, 0.71733392918976213, 0.71793976148658856, 0.71853880489801047,
	0.71914491894311816, 0.71975110255086927, 0.72033739704666533, 0.7209326170301058,
	0.7214594818509763, 0.72208998641988797, 0.72271367383530583, 0.72329839405731378,
	0.72379698806746851, 0.72442216294815975, 0.72495901478434355, 0.72555112304843405,
	0.72687381417225394, 0.72721902769582747, 0.72777249982566949, 0.72837130802729488,
	0.72889484929336734, 0.72945318360659439, 0.73008404291941953, 0.73067866510058666,
	0.73122212095559569, 0.73179505552471436, 0.73237385451240433, 0.73295941059706471,
	0.73355101487015995, 0.73412777260876727, 0.73471786825736674, 0.73530433809394458,
	0.7359391766115041, 0.73651817924768226, 0.73710221880025195, 0.73767980871358485,
	0.73826497682766101, 0.73885045889933465, 0.7394171495718187, 0.73999298491200582,
	0.74050435358707412, 0.74111474976249148, 0.74171882203348027, 0.74228647606786702,
	0.74277211538537924, 0.74337907178067575, 0.74390269425723832, 0.74447819993426811,
	0.74581624679992287, 0.74611998013220404, 0.74665703478065004, 0.74724118224531544,
	0.74774880195760507, 0.74829099109041552, 0.74891135959809219, 0.74949255564324324,
	0.75002677285073782, 0.75058561411163316, 0.75115134060308353, 0.75172446770182422,
	0.75230681662655174, 0.75287121026450121, 0.75344989771788307, 0.7540248448706941,
	0.75467485529981482, 0.75523995790216769, 0.75581106847003843, 0.75637743986453876,
	0.75695181163695013, 0.75752520044219318, 0.75808075646677076, 0.75864478542525149,
	0.75915300272777309, 0.75975388747406758, 0.760347569363232, 0.76090197589628639,
	0.76136914626133612, 0.76196678285585573, 0.76247036869601226, 0.76303315634460389,
	0.76450667474208089, 0.76476829471315422, 0.76527991887821289, 0.76585294400401493,
	0.76632960332642863, 0.76684809566938816, 0.76746758223573208, 0.76803547444074238,
	0.76855773167486785, 0.7690969526176894, 0.76964468023325006, 0.77020107825563622,
	0.77077253081312069, 0.77131817701995631, 0.77187932576847784, 0.77243658891686129,
	0.77313105946709249, 0.77367532066532696, 0.77422500988089604, 0.77477148054666334,
	0.77532911546405392, 0.77588251052070112, 0.77641536520551857, 0.77695739256491381,
	0.77744833970258753, 0.77803549172705866, 0.77861555172870089, 0.77914427686478349,
	0.77956347684495486, 0.7801488596754913, 0.78060870655873282, 0.78114728897820529,
	0.78284877351175819, 0.78305573557193242, 0.78352628896783794, 0.7840794794535072,
	0.7845089230859158, 0.78499108024315989, 0.78560447584028825, 0.78615058071332877,
	0.78665339005173396, 0.78716409991767211, 0.78768535847294074, 0.78821682011070782,
	0.78876950141548574, 0.78928924397066491, 0.78982503549308336, 0.7903582510823095,
	0.79110033326059848, 0.79162007819958091, 0.79214409842307454, 0.79266560732248292,
	0.79320434384981653, 0.79373502901070014, 0.79424044669932925, 0.79475746299778494,
	0.79522415330918761, 0.79579787174073757, 0.79636586304997392, 0.79686773244981335,
	0.79723275849265196, 0.79780850363639355, 0.79822250743527534, 0.79873870223130072,
	0.80066701780584171, 0.80082339330926455, 0.80125980126956831, 0.8017968305348101,
	0.80218927731136491, 0.8026430315732016, 0.80325320674541589, 0.80378382903936352,
	0.80427658308719796, 0.80476760499175815, 0.80527170050431574, 0.80578743128812558,
	0.80633009948212275, 0.80683480752952719, 0.80735580712027466, 0.80787620190445153,
	0.80866994705533246, 0.80917610909435156, 0.80968753803458327, 0.81019755049507469,
	0.81073071134272334, 0.81125242719692514, 0.81174575030236185, 0.81225277445626487,
	0.81271372487106508, 0.81328723084500043, 0.81385650690117961, 0.81434801797913881,
	0.81468143766596723, 0.81526132844040289, 0.81564925420955581, 0.8161589533040785,
	0.81834057202548338, 0.81845485987628697, 0.81886890710042226, 0.81940618546730526,
	0.819770150834912, 0.82020679619387493, 0.8208334816351387, 0.82136329626542104,
	0.8218584015414816, 0.82234055503392378, 0.82283822046968347, 0.82334983921131211,
	0.82389770781324467, 0.82439585326140175, 0.82491244753304716, 0.82542823475354665,
	0.82631425980503426, 0.82681275162886558, 0.82731363589478257, 0.82781661371037918,
	0.82834672281557253, 0.82886037069309204, 0.82934288058719119, 0.82983919635240389,
	0.83030184507091442, 0.83087650144972436, 0.83144716647515293, 0.83192174483904124,
	0.8322055344860928, 0.83278929683736758, 0.83313099190763862, 0.83362472646352492,
	0.83591191574454948, 0.83601733798473832, 0.83642972965489948, 0.83694980110342465,
	0.83734530546412422, 0.83778625764260795, 0.83837370402694589, 0.83888918720109218,
	0.83946015005937347, 0.83995427629128827, 0.84046457904591776, 0.84097568457640026,
	0.8414937840350456, 0.84202844433118873, 0.84253218137480368, 0.84307376352763941,
	0.84385442154974055, 0.84441328518694936, 0.84501708373380824, 0.84558865697163033,
	0.84626227027001322, 0.84690681100700416, 0.84747376555443643, 0.84809848416116307,
	0.84857849629263871, 0.84927704862302733, 0.85001058172786104, 0.85065987689235611,
	0.85124671474242231, 0.8520837424062695, 0.85392647558459289, 0.85579608091325865,
	0.85385199254688615, 0.85448620511203599, 0.85496534113388689, 0.85536930741006356,
	0.85555646160997412, 0.856000759186474, 0.85640312565859833, 0.85684472112400389,
	0.85677291308664938, 0.85716572341542563, 0.85754181449271849, 0.85797293501631533,
	0.8584231788060418, 0.85868888019350409, 0.85938217812087236, 0.85983606578915062,
	0.85980543840333623, 0.86020640901256695, 0.86063530957285195, 0.86103710192558314,
	0.86139796472245678, 0.86180819199885372, 0.86221670092319458, 0.86262804670793114,
	0.86293559159595368, 0.8632404743214499, 0.86368998231613026, 0.86407790901509485,
	0.86460927472052562, 0.8647869957021852, 0.86562010394486699, 0.86605729844122503,
	0.86731422006398429, 0.86753002587606465, 0.86785698503651043, 0.86826336902858425,
	0.86842423576701266, 0.86876719405942526, 0.86924179986672501, 0.86965816368773596,
	0.86985671329748493, 0.87022791934007704, 0.87058625196749184, 0.87098018619221296,
	0.87138279445081945, 0.87170185316396287, 0.87219735772192231, 0.872610472583638,
	0.87304589642753139, 0.87346507063475087, 0.87386715705371509, 0.87423132575916684,
	0.87459348478134957, 0.87499124845435161, 0.87533242902837649, 0.87570536707473889,
	0.87588881120270112, 0.87625305038236923, 0.87671236101174399, 0.87705144200527729,
	0.87730951679363511, 0.87755910832268258, 0.87814419468802452, 0.87855869162761024,
	0.8804178812085216, 0.88059916026238816, 0.8808796595083922, 0.88125256827033949,
	0.88134249374501195, 0.8816447397495415, 0.88210198535268791, 0.88248863249087339,
	0.88262458169271163, 0.88296822306471434, 0.88328740233979552, 0.88364983963530475,
	0.88401617025520829, 0.88429607527251819, 0.88478658347417871, 0.88520681250944511,
	0.88563699169459387, 0.88600023158588104, 0.8863634763358933, 0.88668431353300459,
	0.88700083960991138, 0.88736290660662875, 0.88766067257677483, 0.88799413718998632,
	0.88811786155918804, 0.88844138627532721, 0.88887578753083241, 0.88917096106208049,
	0.88935978024453477, 0.88954465261081572, 0.89013020225048711, 0.89052215955504288,
	0.89258120627036208, 0.8927942829536305, 0.89300827457091447, 0.89334393014649871,
	0.89333158229991561, 0.89357819659835458, 0.89402706509636098, 0.8943809478655439,
	0.89444075667495859, 0.89475088118135515, 0.89502044598616992, 0.89534512937493438,
	0.89567002639273086, 0.89589559742206792, 0.89635563801977702, 0.89672166191334546,
	0.89714582928424125, 0.89755364733977261, 0.89787890364678469, 0.8981637470089926,
	0.89843254864585476, 0.89877129157312963, 0.89901943609380996, 0.8993233826007182,
	0.89935952396729413, 0.89967215648255128, 0.90009129517596931, 0.9003418877428998,
	0.90042735447111033, 0.90056288269605023, 0.90113263771999463, 0.90154465284258178,
	0.90392857513021396, 0.90416791117948703, 0.90430138254933667, 0.90460340691091234,
	0.90446958348008866, 0.90465502103946061, 0.90510794793930416, 0.90543311117415093,
	0.90540899840071576, 0.90569248971831884, 0.90590890267092639, 0.90619696007432349,
	0.90647814813921779, 0.9066551325659199, 0.90709284118001898, 0.90744155407401794,
	0.90789289706173082, 0.90832129810897533, 0.90859746863799085, 0.90883925748453398,
	0.90905143759128793, 0.90936227673732861, 0.90955387189296966, 0.90982230777372164,
	0.90975737081367891, 0.91006785463498407, 0.91046904986840982, 0.9106682429226397,
	0.91061315826821798, 0.91070787321146596, 0.91123375216222458, 0.91166706277492748,
	0.91442467206307965, 0.91475119895501911, 0.91479223031443013, 0.91505730144360731,
	0.91477792768329103, 0.91490265624989608, 0.91536651893427001, 0.91567424201720127,
	0.91561249211773377, 0.91581878038845932, 0.91596335702109244, 0.91619666642652775,
	0.91641655793022325, 0.9165273231902511, 0.91692701350021055, 0.91726209227021349,
	0.91768523691931614, 0.91817679349930048, 0.91839173249084538, 0.91858359031392012,
	0.91871452707703316, 0.91899939418194854, 0.91911988980025128, 0.91935300294481248,
	0.9191218432067001, 0.9194499907157091, 0.91982275462884799, 0.91996425478903687,
	0.91972788976988307, 0.91977521407144958, 0.92025844062644779, 0.92076527608044656,
	0.9237438451729546, 0.92424037707363804, 0.92415813116088696, 0.924362348004936,
	0.92389539663740816, 0.92395087929209729, 0.92438232042194324, 0.92464309096225128,
	0.92429639322903301, 0.92457874380977956, 0.92463709270647498, 0.92483712936735463,
	0.9249369245136746, 0.92500282395845601, 0.925379068307845, 0.92572938513389591,
	0.92589113435172254, 0.92654181224140708, 0.9266668737362318, 0.92679956531353247,
	0.9267831163881477, 0.927040074564071, 0.92706660711518585, 0.92726615692248171,
	0.92675833559866339, 0.92712186154478204, 0.92742845657320994, 0.92750206468013896,
	0.92705590387305126, 0.92702183196837373, 0.92748926911373897, 0.92809964815666202,
	0.93358092886185595, 0.93289336132790945, 0.93237194215167374, 0.93265297454216545,
	0.93156854615224005, 0.93128704193416001, 0.9320790169675206, 0.93244204530535468,
	0.93160802616029514, 0.93169096559300868, 0.93164947658930797, 0.93182855895943506,
	0.9322404242286858, 0.93210859600843965, 0.93273456397095034, 0.93317621541466567,
	0.9368217492315698, 0.93567362198695114, 0.93567278999018944, 0.93603492779736386,
	0.93668653614052333, 0.93673553723545611, 0.93758779974348982, 0.93799893204511531,
	0.94104087444988471, 0.94101302898491401, 0.9431740367059106, 0.94425060207403788,
	0.94505942703572365, 0.94888221126648431, 0.9517516998280785, 0.95967396422456575,
	0.97254436675558742, 0.96332540098315955, 0.9559216506849999, 0.95214294201827465,
	0.94697023354141552, 0.94380736343487726, 0.94221694543288381, 0.94039111645110063,
	0.93830048868831306, 0.93678305932626005, 0.93556150690347906, 0.93441965470731336,
	0.93338700821767329, 0.93252129549057017, 0.93164085496329052, 0.93094948092682939,
	0.93261914220628039, 0.93210563031755478, 0.93155108320487734, 0.93096998077766557,
	0.93065594226325965, 0.93022771079720723, 0.92958865456341977, 0.92906439367023863,
	0.92836423853258776, 0.92822008917349452, 0.92815615479264935, 0.92757462268426305,
	0.92605198027710156, 0.92601450045801226, 0.92484010589981613, 0.92438675042363161,
	0.93090842088990988, 0.93031675782147183, 0.92943010667509252, 0.92911849158141402,
	0.92805047405176022, 0.92732531237552907, 0.92736570346146685, 0.92702109860102311,
	0.9266489467620973, 0.92614287691543795, 0.92566479232480514, 0.92523414063429332,
	0.92494684907292746, 0.92447449934110493, 0.92404655762630938, 0.92363887543586054,
	0.92485851232477112, 0.92450055063769354, 0.92403509609530576, 0.92357937218499597,
	0.92325627104663666, 0.92284985264148178, 0.92231560900743981, 0.92183960023833489,
	0.92134420858071442, 0.92111068933766804, 0.9209416389072298, 0.92038374475671203,
	0.91917943676346292, 0.91898954304524827, 0.917999834186502, 0.91752104575112858,
	0.92277805362603982, 0.92222279399849161, 0.92136363652808029, 0.92100533576626653,
	0.91997948092111415, 0.919257431115305, 0.91921126983267099, 0.91882459329581601,
	0.9184070715977628, 0.91787995728749172, 0.91737724862510006, 0.91691722249775709,
	0.91658307842873998, 0.91608611253368777, 0.91563179816153073, 0.91519423822059198,
	0.91617579194798693, 0.91578597352916169, 0.91530188017896352, 0.9148237094911511,
	0.91446683987445798, 0.9140351376774184, 0.91349090321186766, 0.91299956995138187,
	0.91247484307215387, 0.91219850715012307, 0.91197967069602259, 0.91141909282157174,
	0.91028388062543641, 0.91004843086855014, 0.90910862484994925, 0.90862109418663617,
	0.91313229482968516, 0.9125920292176144, 0.91178098122250761, 0.91139665453821717,
	0.91043332051404757, 0.90973638207557495, 0.90962893794045441, 0.90922378343013655,
	0.90878453699048933, 0.90825924516273449, 0.9077549238403213, 0.90728894464513699,
	0.90693211677583818, 0.90643321665349486, 0.9059749059720914, 0.90552936957386798,
	0.90630327354419982, 0.90590097370036482, 0.90541805364310879, 0.90493747651091017,
	0.90455887599460871, 0.9041198449274982, 0.90358242617869222, 0.90309097071994526,
	0.90256992542573855, 0.90226465603383232, 0.9020110223076605, 0.90146038514265914,
	0.90040871835722414, 0.90013827297625093, 0.89925962319287456, 0.89877236656298121,
	0.9026641586461337, 0.90212936983644887, 0.90136494840763626, 0.90096462093114726,
	0.90005714358461908, 0.89938484954364706, 0.89923280999032285, 0.89881634551654266,
	0.89836125666665068, 0.89783981465583584, 0.89733634498727388, 0.89686767763735376,
	0.89649516313445587, 0.89599531772688301, 0.89553564047476042, 0.89508409243602749,
	0.89569507314023511, 0.89528096788757827, 0.89479817504382486, 0.89431440886692826,
	0.89391957313279424, 0.89347300885276171, 0.89293937005256274, 0.89244620240258909,
	0.89192396502693938, 0.89159099315601198, 0.8913065369460148, 0.89076083754348989,
	0.8897744324374075, 0.88946987352910878, 0.8886387563732806, 0.88814740871391196,
	0.89154364336359138, 0.89100121575654367, 0.89026977806068408, 0.88985139832451077,
	0.88898370639470781, 0.88832612599351923, 0.88813276188958712, 0.88770134698736125,
	0.88722739395205674, 0.88670468742033692, 0.88619567572504732, 0.88571863117217842,
	0.88532887829758322, 0.8848215342252832, 0.88435858869056827, 0.88390428256023323,
	0.8843759209663602, 0.88393197429329162, 0.88343929321702763, 0.88294406921017576,
	0.88252753897420644, 0.88206645254245775, 0.88152782772095883, 0.88102474860793289,
	0.88049483738479362, 0.88012941228194475, 0.87981113646756115, 0.87926098065691183,
	0.87832115600802396, 0.87797842496663703, 0.87717766367571559, 0.87667315003443058,
	0.87972116537774814, 0.87912884507947997, 0.87841221821447113, 0.87797128611722652,
	0.8771232810566808, 0.87646548635362231, 0.87623473718857736, 0.87578333334874869,
	0.87528722675737036, 0.87475083008893528, 0.87422875237359887, 0.87373653928918371,
	0.87332386394663486, 0.87280225288647373, 0.8723207525593335, 0.87183981354534401,
	0.87221776983901722, 0.87176260520622262, 0.8712584133795086, 0.87074904587040847,
	0.87031049726727205, 0.86983188860481198, 0.86928230607903034, 0.86876514498326884,
	0.86822361268150983, 0.86783165490364889, 0.86748375211070705, 0.86692319247485539,
	0.86600385136749847, 0.86563114191299295, 0.86484206095094718, 0.86432267985813582,
	0.86789454355922147, 0.86672638191035378, 0.86601008453277006, 0.86553827034329445,
	0.86464633217364129, 0.86394873611843592, 0.86374257683919331, 0.86327459610063528,
	0.86271638879229307, 0.86215315529506054, 0.86161224901412858, 0.86111588416658902,
	0.86073207394801177, 0.86019189255879747, 0.8597342700596029, 0.85925410215051379,
	0.8599034577248198, 0.85933253028415346, 0.85883886497843176, 0.85833467625175563,
	0.85789758852987252, 0.85742747486628468, 0.85691116774093024, 0.85641764166448509,
	0.85600991421953765, 0.85561870176887012, 0.85532155105128749, 0.85477433190332208,
	0.85386965275607374, 0.85345514619433782, 0.85268917135933564, 0.8521781371416427,
	0.85367225914671729, 0.853890090623037, 0.85315418259221898, 0.85251718401147403,
	0.8517144381346089, 0.85107166488797892, 0.85052513545457109, 0.84994368077685278,
	0.84898383020264867, 0.84845836277161246, 0.84779331023074922, 0.84721781325853396,
	0.8466474468826386, 0.84602794680628024, 0.84554208853697721, 0.84506422802028103,
	0.84396546435981656, 0.84378173263718759, 0.84315514148760828, 0.84261383571250659,
	0.84193285696959919, 0.84140358061275344, 0.84084093658926307, 0.84033418914463875,
	0.83957783883105674, 0.83915005854131475, 0.83859027936049102, 0.8380458923605536,
	0.83739675999509822, 0.8368091852910623, 0.83637904933201035, 0.83608042799701421,
	0.83475322685113007, 0.83542295765066332, 0.83474206630132908, 0.83423890291898428,
	0.83342846739537524, 0.83287256121323305, 0.83239633731543161, 0.83192440904833376,
	0.83102172978918609, 0.83063902364263442, 0.83003489906218719, 0.82951642666915626,
	0.82889090747641114, 0.82834104162528621, 0.82786575517116656, 0.82746600594671149,
	0.82632187000552126, 0.82629650038446689, 0.82570373842887657, 0.82518455306995553,
	0.8245098141409658, 0.82402740952873799, 0.82345400800547597, 0.82297598351546442,
	0.82205962967234536, 0.82169300089066233, 0.82115404260743874, 0.82062475580147209,
	0.81992597076994878, 0.81934059780279489, 0.81896092680018329, 0.81874757082494232,
	0.81704579866458904, 0.81786316296625283, 0.81720912250322009, 0.81671892173019622,
	0.81591407073157673, 0.81539744166664507, 0.8149115738664362, 0.81446470227559553,
	0.81348414982726691, 0.81315464363611178, 0.81255495874547068, 0.8120578287673057,
	0.81141925684102711, 0.81088495264277916, 0.81043997790932176, 0.81008149339719548,
	0.80875342407186601, 0.80878658320019714, 0.80820065577740452, 0.80770018281059541,
	0.80700845960925682, 0.806544639971011, 0.80598543489361485, 0.80553052658553481,
	0.80458685287514164, 0.80423561209040695, 0.80369029211348486, 0.80317909492883954,
	0.80251300055781105, 0.80191940870129597, 0.80158777572534934, 0.80140897441914161,
	0.79950261765588648, 0.80029174758888511, 0.7996545286084874, 0.79916794956715698,
	0.79837742609740026, 0.7978748462676718, 0.79737931354052294, 0.79693519289132153,
	0.79594595118687583, 0.79562028033876198, 0.79502157490109437, 0.79452497010882517,
	0.79387904607560533, 0.79334503443650384, 0.79289642159687812, 0.79253345900887162,
	0.79117439074594442, 0.79118190924718423, 0.79059363167951269, 0.79008786887805604,
	0.78939075461841823, 0.78891867604290788, 0.78835451269830559, 0.78789097277395526,
	0.78694788404289517, 0.78657767494061637, 0.78601764095835958, 0.78549925020053757,
	0.78484120277230041, 0.78423613787220792, 0.78389401883621346, 0.78368771499175482,
	0.78166963209548357, 0.78239959937186387, 0.78176893161504535, 0.781264989104553,
	0.78049221554149395, 0.77998414892440382, 0.77946105033950386, 0.77899744678494931,
	0.77801295750972932, 0.77766664093165838, 0.77705913896758638, 0.77654720316739789,
	0.77588784024847235, 0.77534138181471524, 0.77487428602642094, 0.77448838086930905,
	0.77309780291654551, 0.7730658941147377, 0.77246769574202956, 0.77194697949765845,
	0.77123986396639699, 0.77075025034421274, 0.77017583472043538, 0.76969623047704216,
	0.76875557635685954, 0.76835796838091375, 0.76777700204286459, 0.76724796250668437,
	0.76660379165936432, 0.7659807788259716, 0.76563276721034168, 0.76539952104743181,
	0.76330763590808626, 0.76392785102798255, 0.76330046665697482, 0.76278031548969361,
	0.76202033570881123, 0.76150546010793629, 0.7609604802483384, 0.76048018975570697,
	0.75949999031727733, 0.7591325750522544, 0.75851862694802963, 0.75799484495312819,
	0.75732958879308521, 0.75677302794082402, 0.75629300992040394, 0.75588749369481933,
	0.75451377212740878, 0.75441739431144328, 0.75381424919879336, 0.75328316799895512,
	0.75257595930073695, 0.75207173147880457, 0.75149275936411242, 0.75099938513952691,
	0.75008549187958018, 0.74965812897050987, 0.74906674869522938, 0.74852922068875682,
	0.74789591486775231, 0.74727026176706535, 0.74689403980761293, 0.74661220563447173,
	0.74482495665668136, 0.74512546238668187, 0.74449774731605856, 0.74396550381394511,
	0.74322227545343533, 0.74268853804034285, 0.74213731676749461, 0.74163551299667063,
	0.74071611428778128, 0.74029310466295362, 0.73967915239514115, 0.7391382532869154,
	0.73848808409119659, 0.73791762921806858, 0.737409409444577, 0.73695456509156521,
	0.73580225317723613, 0.73553372185032961, 0.73492890006468625, 0.7343757602449843,
	0.73369653505878929, 0.73316014402930862, 0.73256915382920962, 0.73203748110510158,
	0.73121217332741051, 0.73072002324724961, 0.7301259367431524, 0.72955908343337006,
	0.72891050422932335, 0.72829669110581507, 0.72781078291994017, 0.72739360255040308,
	0.72625829649197138, 0.7261327185153118, 0.72549355391710812, 0.72492813528391054,
	0.72421222775975702, 0.72362878497955851, 0.72306154770121056, 0.7225067893025976,
	0.72170922851399155, 0.72117993025081495, 0.72055832298823963, 0.71997614849033009,
	0.71934369975495716, 0.71874073554615958, 0.7181738157073928, 0.71762734309548559,
	0.71679090072438967, 0.7163030367326173, 0.71568680067408741, 0.71509000205679984,
	0.71444261290083766, 0.71385338835768697, 0.71323489860184031, 0.71264218810836544,
	0.71191815335193942, 0.71133902429160001, 0.71073502851378667, 0.71012286877888497,
	0.70944750262333112, 0.70883400117708273, 0.70822277331708261, 0.70765375747097825,
	0.7068762248932472, 0.70645475290951698, 0.70578443247514178, 0.70514657968088279,
	0.70445005661266324, 0.70379063179531676, 0.70316941742754357, 0.70252963819045033,
	0.70182693807987784, 0.70117779773326949, 0.70052501301977588, 0.69987770420344797,
	0.69923078761690238, 0.69857502603797839, 0.69793292993882727, 0.69728604111645232,
	0.69659003424910493, 0.69595554116181224, 0.69530765917035553, 0.69465333618002156,
	0.69399985671004194, 0.69335120507236392, 0.6926893815759122, 0.69203366184278181,
	0.69133210482427865, 0.69067724053755508, 0.6900356629143356, 0.68937518468344683,
	0.68867903415609499, 0.68802767651288443, 0.68735343529699133, 0.68669527954112597,
	0.68593891653158257, 0.68551041107869259, 0.68483901961169147, 0.68418333771367634,
	0.68349128921417646, 0.68282607203016077, 0.68217822969932085, 0.68152078778902436,
	0.68080614209398438, 0.68014560019539005, 0.67948089634002018, 0.67882027229492758,
	0.67815689097659715, 0.67748927621440469, 0.67683456008114651, 0.67617408961665904,
	0.67542578081474913, 0.67477605931435658, 0.67411742872486347, 0.67345198774450887,
	0.67278446798974034, 0.67212349127888715, 0.67145326174801578, 0.67078759069031169,
	0.67008037384322994, 0.66940886624086438, 0.66874886819468471, 0.66808119644620312,
	0.667396610936835, 0.66672783460648688, 0.66605869236446946, 0.66539447043095323,
	0.66447084084941521, 0.6640512641358034, 0.66338096977360705, 0.66271381207370494,
	0.66202658547957971, 0.66135867528086123, 0.66069358204642348, 0.66002586012584386,
	0.65930476430053675, 0.65863701629171667, 0.65796475262022369, 0.65729570911846047,
	0.6566231715660138, 0.65594756573427571, 0.65528452571259166, 0.65461485721573276,
	0.65383955284143902, 0.65317839346206086, 0.65251004406585245, 0.65183607880602601,
	0.65115710068357191, 0.65048554870314745, 0.64980868437049744, 0.64913435747215953,
	0.64842883680675423, 0.64774255015845916, 0.64706723751359629, 0.64639180291264564,
	0.6457133186144417, 0.645029373794475, 0.64435963336092783, 0.64368535614300626,
	0.64268124716350505, 0.64227622737479151, 0.64159477207023308, 0.640915813168764,
	0.64021735736049479, 0.63953740412840565, 0.63886075020789423, 0.63818046790096217,
	0.63744925456856938, 0.63676913510957212, 0.6360838362488267, 0.63540183859957666,
	0.63471790650208715, 0.63402895371549017, 0.63335251078805999, 0.63266915134991808,
	0.63189056815249989, 0.63121731735518771, 0.63053390007345878, 0.62984614582708354,
	0.62915286516145419, 0.62846660931873699, 0.62777602864709137, 0.62708731861950318,
	0.62637474327657539, 0.62567302026704863, 0.62498317158325101, 0.62429295980409139,
	0.62359978568165786, 0.62290152015623712, 0.6222151142344936, 0.62152607661641135,
	0.62050692819577313, 0.620119719193579, 0.61942056315137839, 0.61872752961698252,
	0.6180110268716078, 0.61731487938607821, 0.61662654799627525, 0.61593202580423401,
	0.61518930140677519, 0.61449492370038572, 0.61379524382210093, 0.61309897898773302,
	0.61240214162487638, 0.61169928215454217, 0.61100842905402108, 0.61031133851401875,
	0.60953307574357252, 0.6088475180424342, 0.60815070995523735, 0.60744986196136963,
	0.60674506040456455, 0.60604638893121032, 0.60534289781852291, 0.60464177332011604,
	0.60392072195032342, 0.60320666396656497, 0.60250667350528198, 0.60180474175884657,
	0.60109784637084729, 0.60038967551921174, 0.59969006408740699, 0.59899080869423449,
	0.59794013381570921, 0.59757397510383714, 0.5968667800462174, 0.59616434421077846,
	0.5954423844012906, 0.59473929603013054, 0.59404122251858182, 0.59333852943337806,
	0.59259273787780187, 0.59189229962029011, 0.59118655933025233, 0.59048382720032822,
	0.5897805458113019, 0.58907266565822625, 0.58837560477558215, 0.58767328467703672,
	0.58689015724900939, 0.58620045791301789, 0.58549993463565908, 0.58479557329101928,
	0.58408803547456556, 0.58338629868612701, 0.58268065889943133, 0.58197732822098902,
	0.58125970992622777, 0.58054090919715851, 0.57983799748372167, 0.57913547935009813,
	0.57843333027154342, 0.5777223244762435, 0.57702511156643288, 0.57632564145688336,
	0.57520865619571071, 0.57488922979444124, 0.5741828491519726, 0.57348046277619424,
	0.57276007898222947, 0.57205819103789413, 0.57136010904228085, 0.5706576209338643,
	0.56991431920839775, 0.56921485537253447, 0.56850931846788866, 0.56780691650967419,
	0.56710568377703685, 0.56639766031686656, 0.56570072660090731, 0.56499789025805491,
	0.56422368779926313, 0.56353606573706994, 0.56283294135583972, 0.56212799968635518,
	0.56141854156892934, 0.56071439143857116, 0.56000832750968654, 0.55930306305136379,
	0.5585951618576328, 0.55787145130813454, 0.55716547981279863, 0.55645997379347301,
	0.55575709054826339, 0.5550427002388435, 0.55434015261612946, 0.55363654604963608,
	0.55242508816567171, 0.55207567952235437, 0.55138970231920548, 0.55067790876938938,
	0.5500065046702669, 0.54932368346436633, 0.54858974611353561, 0.54788104726244913,
	0.54719328524015243, 0.54650906797002219, 0.54581912459155157, 0.54512144931116402,
	0.54440100753787124, 0.54372120188739514, 0.5430196078799846, 0.5423351677057997,
	0.54147370428508568, 0.540784470643768, 0.54014872537618208, 0.53948569994104545,
	0.53886129257520488, 0.53823291038803578, 0.5375772046244095, 0.53694616027593711,
	0.53624843277899525, 0.5355756620876756, 0.53495119088285059, 0.53434755564007053,
	0.53384809227459307, 0.53326022168145382, 0.53345124592611037, 0.53357694905520558,
	0.53030165364082238, 0.52988939647378586, 0.5291907147620345, 0.52841776855239742,
	0.52760343345963745, 0.52690208684990969, 0.52609357397340684, 0.52535460738830608,
	0.5243557747634231, 0.52361003307047027, 0.52284952276723184, 0.52210973974456343,
	0.52136721793451168, 0.52054467223614298, 0.51994249545545879, 0.51922574634293661,
	0.51805615674957728, 0.51731130610534559, 0.51658199285216932, 0.51583505094920923,
	0.51506214976558717, 0.51431901127359803, 0.51358281355278845, 0.51284588205660553,
	0.51211707582934651, 0.51123150151290164, 0.51048708299730317, 0.50974893991492687,
	0.50920707540656041, 0.50827428326108082, 0.50783414631519264, 0.50713090414715889,
	0.50523131689003331, 0.50518330998980954, 0.50445942897799012, 0.50371170279971711,
	0.50293454506379309, 0.5022180869186047, 0.50145328394664812, 0.50071514878244272,
	0.49986477403144297, 0.49913994201647682, 0.49839275224322183, 0.49765577408102324,
	0.49690520281037565, 0.49613957346865445, 0.49544739681847244, 0.4947179258384734,
	0.49372882161139631, 0.49302673336975922, 0.49229901821827715, 0.49155490753854542,
	0.49079222318010646, 0.49005632592680309, 0.48931365565109802, 0.48857674453751226,
	0.4878029874150091, 0.4869836530175129, 0.48624231891217179, 0.48550333044154614,
	0.48485187019653198, 0.48399949646895807, 0.48343376219929951, 0.4827195931193119,
	0.48084799885169627, 0.48090122687347397, 0.48017858444525707, 0.4794271730878002,
	0.47865078821561702, 0.4779339027269508, 0.477163772386693, 0.47642122547026095,
	0.47556414738928804, 0.47483711638980519, 0.47408481976869793, 0.4733429061727496,
	0.47258477225763518, 0.47180985373331696, 0.4711028148310612, 0.47034330610973701,
	0.4693146442619644, 0.46867348539162607, 0.46793298320252036, 0.46718984969442889,
	0.4664197114429261, 0.46569119883540261, 0.46494536065490238, 0.46421764196941628,
	0.46343319524292725, 0.46263093936238386, 0.46189102801163073, 0.46115667936182819,
	0.46050118991964933, 0.45965192609574651, 0.45910162418082279, 0.45843552221726425,
	0.45637919984144815, 0.45655385005357518, 0.45583445687389423, 0.45508696293263129,
	0.45431408203873697, 0.4536068242892497, 0.45284034160832909, 0.45210497423251522,
	0.45124871279230033, 0.45053779667804522, 0.44979243955574405, 0.44905988562196608,
	0.44830496166690453, 0.44754579586477078, 0.44685721840700121, 0.44613831364791878,
	0.44511007216724635, 0.44443813176853603, 0.44371148576468478, 0.44297257277478097,
	0.44220515845904279, 0.44147737123134989, 0.44073935943595255, 0.44001136092115156,
	0.43924010126880964, 0.43842860402451039, 0.43768736355085469, 0.43695761544914519,
	0.43631269730754912, 0.43546334045974433, 0.43491484853153461, 0.43422843988699178,
	0.43201379641253768, 0.43234315980115612, 0.43162815672117949, 0.43088468503207633,
	0.43011682372773602, 0.42941737015335629, 0.42865371709542732, 0.42792246960149882,
	0.42706472232776749, 0.42636570398359452, 0.42562430849604138, 0.42489715361149055,
	0.42414371227181674, 0.42339092528312305, 0.42270626223983465, 0.42199409824424344,
	0.42094671996440292, 0.4202954089116846, 0.41957182303286217, 0.41883825877301978,
	0.41807301404448061, 0.41734961977371737, 0.41661769215460892, 0.41589523014474461,
	0.4151359477519817, 0.41432647760763536, 0.41358666491944951, 0.41286202635530839,
	0.41222371820227066, 0.41137858168311492, 0.4108292898391826, 0.41015393982787485,
	0.40772892106908909, 0.4082486124236962, 0.40752877784866609, 0.40678405189768002,
	0.40600885573020046, 0.40530148916055075, 0.4045160659649622, 0.40375310208579118,
	0.40266595538444244, 0.40214593681331257, 0.40142896874257616, 0.40075276373812652,
	0.40000675752109693, 0.39930746174337461, 0.39865291668768205, 0.39796096768619454,
	0.39686771379985974, 0.39625297352961625, 0.39553295826802304, 0.39480735808493056,
	0.39403690623850679, 0.39331891709343303, 0.39259193966569539, 0.3918757903912628,
	0.39111942474477868, 0.39031297202087817, 0.38956606147115103, 0.38884468526073895,
	0.38820891152351483, 0.38736090500159071, 0.38680508113122875, 0.38607531878705664,
	0.38309087713715589, 0.38408379294745693, 0.38341496076336035, 0.38270539584324936,
	0.38193695777740683, 0.38126032099282542, 0.38050701695718336, 0.37979153732834764,
	0.37889513117332163, 0.37822693444698957, 0.37748401609824556, 0.37676512056327055,
	0.37601059887722399, 0.37526020372578112, 0.37458034815608204, 0.37388049676710228,
	0.37272904323065775, 0.37213667090692032, 0.37140549912708137, 0.37067740527853482,
	0.3698919624131386, 0.36917310711520457, 0.36844210984653492, 0.36772577613751589,
	0.36695774883588828, 0.36614706185389978, 0.36538545333156691, 0.3646587787648195,
	0.36402576153374078, 0.36316171462146163, 0.36260690908756604, 0.36193912681172652,
	0.35747078765657131, 0.36030139822347201, 0.35932062048376989, 0.35876555702738705,
	0.35751548439623193, 0.35688398388857973, 0.35628754523638967, 0.35560027860349475,
	0.35461301132356121, 0.35389780999664822, 0.35310461499957707, 0.35237170880112206,
	0.35171297989711831, 0.3508689623754731, 0.35022481388334281, 0.34946985512587814,
	0.34723046796421603, 0.34779601929113196, 0.3468699362335928, 0.34600330729974771,
	0.34494025290694719, 0.34385639502265181, 0.34287654762721809, 0.34160717448872568,
	0.33954545125830943, 0.33815595557465272, 0.33557945688642915, 0.33152581072157822,
	0.32405167182260436, 0.31072454501375613, 0.28009200497297476, 0.22530125492195172,
	0.23007150167488458, 0.28108731222805877, 0.30821931312464923, 0.3201417831122198,
	0.32471253740508532, 0.32711452399480506, 0.32817984858925181, 0.32855094944035029,
	0.32824538158131983, 0.32801069599195487, 0.32764406219190978, 0.32710246512018615,
	0.32636120296847521, 0.32575090669948353, 0.32506355656410207, 0.32439570522533695,
	0.3234148388784851, 0.32282488111118424, 0.32218896453068557, 0.32145436376844361,
	0.32080217353260565, 0.32012107656630462, 0.31933870219990607, 0.31860359785957715,
	0.31759748121456954, 0.31688585846758077, 0.31623339592080363, 0.31545287955864432,
	0.31465351698976052, 0.31386818593979948, 0.31315937828093071, 0.31239859337900483,
	0.31048735578010694, 0.31043951303717576, 0.30976794687618042, 0.30900065509472868,
	0.3083532115001662, 0.30766824423435585, 0.30683402154228079, 0.30607432357862718,
	0.30529335381297329, 0.30457713888504578, 0.30384269768674349, 0.3031005915281032,
	0.30232352736824325, 0.30158724969318879, 0.30084678001194542, 0.30010268713943872,
	0.29895466585211916, 0.29823423767828572, 0.2975036723007739, 0.29676383731113004,
	0.29599940191557672, 0.29525681462727793, 0.29453237394442788, 0.29380276253086829,
	0.29305051433690454, 0.2922621043491766, 0.29147274092610664, 0.29076422217205067,
	0.29018404132302578, 0.28939394832803339, 0.28879203715927138, 0.28809160541056095,
	0.28523633746108829, 0.28519204113723701, 0.28458508688252182, 0.28383283627986833,
	0.28326050547061482, 0.28262509371227557, 0.28178150732189272, 0.28104245711382725,
	0.2802803637420721, 0.27959739162480834, 0.27889470732796157, 0.27818123119758698,
	0.27742112833688887, 0.27671778928698615, 0.27600895145837628, 0.2752962942689382,
	0.27401762740564867, 0.27333273271231989, 0.27264392931757597, 0.27194532017107942,
	0.27119265013562005, 0.27048709280375177, 0.26980685115272224, 0.26911164636558543,
	0.26841955262620654, 0.26764179200453436, 0.26686261332186989, 0.2661966406370051,
	0.26571658784044166, 0.26493971474162914, 0.26441373129439338, 0.26374034976584809,
	0.26058142813893598, 0.26053726336081634, 0.25999230641783194, 0.25926801856735759,
	0.25876337677270911, 0.25817778021063531, 0.25734567955396509, 0.25663703017756356,
	0.25589843190080513, 0.25525229810072558, 0.25458539328380569, 0.25390652654820717,
	0.25317584418881584, 0.25250636296375178, 0.2518340666441824, 0.25115368465075083,
	0.24983833184545703, 0.24917523001604716, 0.24851799299077065, 0.24785011064537144,
	0.24713592681194202, 0.24645777998192669, 0.24581623503683092, 0.24516092078457846,
	0.24448971671906761, 0.24373404049025241, 0.24297615006159851, 0.24235163207272237,
	0.2419500281486226, 0.24118612859971952, 0.24073115202780318, 0.24009336993346306,
	0.23667259548503458, 0.23664296989172642, 0.23615432876885167, 0.23545748048759882,
	0.23501500254655575, 0.23447591257656972, 0.23365677106403873, 0.23297745809782025,
	0.23226842129609587, 0.23165852099082965, 0.23102675029327682, 0.230381165318853,
	0.22967776492030123, 0.22904276836524953, 0.22840389735170999, 0.22775539674220002,
	0.22640392405893262, 0.22576777697605571, 0.22514493289318174, 0.22451061506788364,
	0.22382404748698834, 0.2231772182018569, 0.22257268744804992, 0.22195179610865642,
	0.22131919608549666, 0.22058541321739231, 0.21984838171238255, 0.21926176423635829,
	0.21892871502647132, 0.21818402400778378, 0.21778769717739382, 0.21718404439198152,
	0.21348704893370646, 0.21358057502310812, 0.21314210468291672, 0.21247488902243625,
	0.21208975586756781, 0.21159513065813651, 0.21079584988282152, 0.21014945762479231,
	0.20948485859731081, 0.20891474862949441, 0.20832254052029295, 0.20771429157070431,
	0.20704295901320721, 0.2064410844223043, 0.20579856029881027, 0.20507101833326727,
	0.20374538479004645, 0.20323317437484231, 0.20267751478356932, 0.20209517352023507,
	0.20144825898159432, 0.2008465871244777, 0.2002902646780485, 0.19971752800834611,
	0.19914020924488937, 0.19841936007178976, 0.19771530080823096, 0.19717792750656774,
	0.19693881422732043, 0.19620520954208109, 0.19589751753181589, 0.1953348032326741,
	0.19143575995469977, 0.19147764542895701, 0.19110767741365844, 0.19047376244229938,
	0.19016159654406201, 0.18972316454445451, 0.18893559442062607, 0.18832176482084878,
	0.18767234460064589, 0.18714180493799962, 0.18658572457800782, 0.18601202692463267,
	0.1853661879839763, 0.18480482003077434, 0.18423819220351997, 0.18365859725818301,
	0.18221299517258843, 0.18164020640048903, 0.18109129607042704, 0.18052794914043824,
	0.17989969517421123, 0.17931999846040975, 0.1787922486957495, 0.17824384921621556,
	0.17767998643598631, 0.1769927297568234, 0.17629938970521816, 0.17579189024914929,
	0.17559855102306274, 0.17489306430285245, 0.17462007426514123, 0.17408790586457651,
	0.16999703977017291, 0.1701022568603858, 0.1697745960404867, 0.16916367116880404,
	0.16889404734144903, 0.16848937011679749, 0.16772268158134368, 0.16713470659611684,
	0.16651010458499607, 0.16600953120100209, 0.16548385790592893, 0.16494074468623773,
	0.16432669222072427, 0.16379609141747259, 0.1632631443648648, 0.1627142431684164,
	0.16127703519889539, 0.16073752086501009, 0.16022305155319411, 0.15969299185399002,
	0.15909471777554393, 0.15854761886579152, 0.15805828329747654, 0.15754564361291204,
	0.15702606148718257, 0.15637415758668158, 0.15571092504852291, 0.1552416184972833,
	0.15509272491403375, 0.15442246937154436, 0.15419000790033408, 0.15369514513713078,
	0.14930901126256327, 0.14944326579170505, 0.14917069615150452, 0.14857412750598759,
	0.14838263364379645, 0.14802761630648517, 0.14724322603548567, 0.14667453805034533,
	0.1460508174551737, 0.14557826278147221, 0.1450790105732086, 0.14456312479791356,
	0.14396904738109279, 0.14346382804870211, 0.14296479768255915, 0.14244355391726471,
	0.14085136635880716, 0.14032608907648242, 0.13983479141669905, 0.13933519780200468,
	0.13874852454763195, 0.13822470772393311, 0.13777069830161756, 0.13728915265871092,
	0.13680428338296413, 0.13615042893104631, 0.13548748118322382, 0.13505418357829221,
	0.13501926056940042, 0.13433738560031758, 0.13419817238911305, 0.13373561085581293,
	0.12921326410538211, 0.1292716543091596, 0.12903769811737481, 0.12848272933488522,
	0.12833030470238305, 0.12801670091930434, 0.12726782243629889, 0.1267393762552054,
	0.12617078649282143, 0.12574507487452802, 0.12528699024697335, 0.12480777807717855,
	0.12423679143571563, 0.12377462163903527, 0.1233039254775455, 0.12282027234418554,
	0.12126488127342085, 0.12078404921574573, 0.12033290040441147, 0.11986848718034905,
	0.11932107813507289, 0.11883610267150847, 0.11841442327740186, 0.11796859831137285,
	0.11750062035290093, 0.11688464897581931, 0.11625831567576519, 0.11586130244552015,
	0.11586036883773489, 0.1152129767064671, 0.11511420078304416, 0.11468950521564183,
	0.11011653083395222, 0.11021486908755766, 0.1100256992371501, 0.10950500536560862,
	0.10940008321580023, 0.1091286969867951, 0.10840749949215539, 0.1079143084770017,
	0.1073788735776597, 0.10699115253789727, 0.10657046349946943, 0.10612804955566886,
	0.10559101924589763, 0.10516604505664925, 0.10473246488169907, 0.10428517037519472,
	0.10273390220812828, 0.10228608794538097, 0.10187242988719625, 0.10144500310007365,
	0.10093225098556793, 0.10048337189442869, 0.1000999710739158, 0.099691348826273216,
	0.099261516498679092, 0.098676477514101815, 0.098081984760651691, 0.097723524465406941,
	0.097774392506948513, 0.097157761165731799, 0.097106070676587095, 0.096717080546727618,
	0.092070445866942602, 0.092196651150304593, 0.092053766206086157, 0.091566827689991429,
	0.091512503276867233, 0.091283737781735708, 0.090588415320268859, 0.090129322468082806,
	0.089630541125977056, 0.089279725012298014, 0.088896574639342488, 0.088489886433804954,
	0.087984930652034971, 0.087596872611930804, 0.087198072439961541, 0.086785069791204678,
	0.085233327780177254, 0.084815808161044989, 0.084439473409116422, 0.084047428557145087,
	0.083568691923773517, 0.083154454689286214, 0.0828077173973195, 0.082434511676760233,
	0.0820388795517943, 0.081482938630610888, 0.080917462475527238, 0.080596260644261203,
	0.080699447215966794, 0.08011120729614131, 0.080106655199920843, 0.07975086237981556,
	0.074995826480206099, 0.075140092353928919, 0.075045778102612634, 0.074589290649398218,
	0.074589089038027162, 0.074402934889546885, 0.073727656065381494, 0.073299495793159822,
	0.072834879001667435, 0.072518686988330291, 0.072171072137345568, 0.071797708955033082,
	0.071321860097512499, 0.070968471747734921, 0.070602075732195679, 0.070220460697105275,
	0.068657802544484989, 0.068264035702511452, 0.067922616266486796, 0.067563353159914061,
	0.067115762539155119, 0.066732705081522209, 0.066420970385428324, 0.066080352343684326,
	0.065720847226929044, 0.065188406533510976, 0.064647570619281947, 0.064361311714171338,
	0.064520190825470849, 0.063956397719998115, 0.06399849175452714, 0.063672343816249033,
	0.058805651314169129, 0.058958997053555784, 0.058910042436178998, 0.058480862875987638,
	0.058531866740925961, 0.05838287816635767, 0.057726433262289344, 0.057325860011084827,
	0.056897740552776757, 0.056606850278783441, 0.056291638346230292, 0.055946720886738105,
	0.055500518668453389, 0.055176429664020803, 0.054837801561207364, 0.054480588483961423,
	0.052924178366914439, 0.052541966432239115, 0.052230143909456191, 0.051896897656290832,
	0.051479224354933913, 0.05111955892931315, 0.050837863176145269, 0.050522806002486327,
	0.050212050098291987, 0.049693153119221053, 0.049175574519408634, 0.048918022389668088,
	0.049132906375060195, 0.048587463062026111, 0.048675385667999727, 0.048373048993310422,
	0.043408873261041002, 0.043609911835507428, 0.043590851145646925, 0.043178781756866375,
	0.043258604394714011, 0.043132089429985136, 0.042493015918787951, 0.042111953064714276,
	0.041702507593536664, 0.0414346429545457, 0.04114320357611486, 0.040822274651073659,
	0.040401054604832953, 0.040100163266667044, 0.039790809426221554, 0.039461202980608415,
	0.037899539151322749, 0.037548550735879357, 0.037262295608262511, 0.036953201816074227,
	0.036552207714720224, 0.03621624220892404, 0.035959970648785443, 0.035669316127380939,
	0.035369725055808501, 0.034877189082301974, 0.03437867604509548, 0.034150938633165713,
	0.034396321093488197, 0.033876748008584021, 0.033989746293980966, 0.033714240110646422,
	0.028807354799410784, 0.028998604502007957, 0.029003782856453497, 0.028628039350988017,
	0.028736312730957649, 0.028642954073572324, 0.028041173639793724, 0.02769482264471107,
	0.027321554927126318, 0.027087190338260295, 0.026825935168711627, 0.026537861602133742,
	0.026153583216512889, 0.025881323534538796, 0.025605190698804087, 0.025303602935160992,
	0.023814368671548795, 0.023497184420793373, 0.023233100067770976, 0.022959589173046687,
	0.022596040008458065, 0.022294677053947432, 0.022071480535681545, 0.021813690783623722,
	0.021534845137857351, 0.021108926596004163, 0.020648670415780036, 0.020450172313084096,
	0.020702078965902683, 0.020229823591669225, 0.020363508916406169, 0.020119624256663925,
	0.015647162984815631, 0.015845676943158579, 0.015900040737854039, 0.015560529558427997,
	0.015719782794681864, 0.015671944543163611, 0.015104303135718216, 0.014827804256920239,
	0.014480807553603915, 0.014291700931641485, 0.014076639418040127, 0.013831915918034419,
	0.013478844712624982, 0.013259853697438147, 0.01302585281903759, 0.012791157685497276,
	0.011287337282209891, 0.01102107924843777, 0.010806283701719054, 0.010575998035727136,
	0.010260004935885865, 0.010010240370011522, 0.0098364399517171242, 0.0096325482880347691,
	0.0094126946199497886, 0.0090081539274064881, 0.0085913976962466235, 0.0084486936760933065,
	0.008784859146078499, 0.0083443538239416377, 0.0085431937391008145, 0.0083825245274424098,
	0.0032295774244522598, 0.0035488234033924436, 0.0036743537362994767, 0.003386024613355488,
	0.0036318936489630341, 0.0036562906548507457, 0.0031111479048452884, 0.0028580656478774183,
	0.002567683528678207, 0.0024418101690474674, 0.0022815549994816848, 0.0020893460709098927,
	0.001780333535863509, 0.0016104725842479193, 0.0014272121613949848, 0.0012211848407853757,
	-0.00034240948723349677, -0.00056646276807641074, -0.00072060305435814038, -0.00089652292313238506,
	-0.0011703235560441452, -0.0013727076995691046, -0.0014952001425490111, -0.0016495511119833256,
	-0.0018320326448231102, -0.0022011803418818163, -0.0025858547867809232, -0.0026757739935706431,
	-0.002253634618476448, -0.0026645346955891129, -0.0023695608770291105, -0.002504136333677786,
	-0.0077848109319432193, -0.0074945868542155639, -0.0073067805569560851, -0.0075628336695589462,
	-0.0072591548091096511, -0.0071860605246564192, -0.0077054087066797472, -0.0079266258495939452,
	-0.0081823784054127369, -0.0082681406092355476, -0.0083894507251484063, -0.0085435496947859346,
	-0.0088221796052671622, -0.0089490514046730793, -0.0090970743456574733, -0.0092627023280922888,
	-0.010831969984533705, -0.011016795371194963, -0.011131997228669522, -0.011270307673951206,
	-0.011513836863761052, -0.011680720619613932, -0.011761698620592979, -0.011878001742011132,
	-0.012024134838523229, -0.012358593478096532, -0.012715969496066024, -0.01276715451196265,
	-0.012292502136353215, -0.012669010236810661, -0.012332889333371524, -0.012434550138755638,
	-0.01777320516323103, -0.017466809416781009, -0.017236306908128853, -0.017458579917215056,
	-0.017109467187297282, -0.017000499854246745, -0.017490646000962319, -0.017678842386919195,
	-0.01789887571151472, -0.01795430762132447, -0.0180412162273983, -0.018161296871701239,
	-0.018405085952798866, -0.018499719028844494, -0.018612718288409456, -0.01874510658562125,
	-0.020295883473702557, -0.020456218605904027, -0.020537570263635962, -0.020641048151700699,
	-0.02085158900898524, -0.020985460423598144, -0.021030144279078122, -0.021111508438395984,
	-0.021220265686784114, -0.02152294367779042, -0.021850039239944934, -0.021865105451342872,
	-0.02134539408002888, -0.021690258877192746, -0.021312193267874997, -0.021378148461577613,
	-0.026709598583260677, -0.026413902496161882, -0.026143780567192111, -0.026333560762856329,
	-0.025941900483105594, -0.02579638003724145, -0.026258067023583291, -0.026413742560051384,
	-0.0265977652305412, -0.026620115290689136, -0.026672887365791483, -0.026759884115945702,
	-0.026972708143343026, -0.027033627845698485, -0.027114362928686443, -0.0272142853933664,
	-0.028747787299362983, -0.028879199511899004, -0.028927285988259201, -0.028998290433062193,
	-0.029177131837174557, -0.029278796592857155, -0.029290652771438108, -0.029339418918636277,
	-0.029417236865124707, -0.029689718936819667, -0.029987778737094344, -0.02996934684760251,
	-0.029408366458404805, -0.02972462990235359, -0.029306604591725377, -0.029339550820421667,
	-0.034728381454642611, -0.034408447415232926, -0.034096612011488371, -0.034256140275582429,
	-0.033818296898572825, -0.033633557041114821, -0.034072809758589687, -0.034197110722228072,
	-0.034347043821974274, -0.034334277045836768, -0.034352406383212838, -0.034406068142993664,
	-0.034589712362121994, -0.034615611301189821, -0.034663365258290231, -0.034729664265381453,
	-0.036265430785015755, -0.036364165438711529, -0.03637635436142031, -0.036412580036115319,
	-0.036558553296740265, -0.036625618769917767, -0.036600990228942802, -0.036613807386337599,
	-0.036657722821622392, -0.036899882332149865, -0.037168279785729175, -0.037111533981394322,
	-0.036496614223496378, -0.036784014573925848, -0.036314883934634383, -0.03631043494221764,
	-0.041831091962756847, -0.04146886917618791, -0.041106541158825859, -0.041232815338133243,
	-0.040739792669087949, -0.040508699363924788, -0.040925642614654763, -0.04101522205697463,
	-0.041131160714577876, -0.041078669873881965, -0.041058202021052252, -0.041074685805678079,
	-0.041226339196211048, -0.041214136773793542, -0.041224457608219245, -0.04125418120172554,
	-0.042807280070607676, -0.04287173163393293, -0.042845447984204053, -0.04284438093156364,
	-0.042957252235491732, -0.042988339811829777, -0.042924403922025241, -0.042899440584902651,
	-0.042907239040013048, -0.043120667626955614, -0.043360847240923525, -0.043264337266977815,
	-0.042588017154270998, -0.042849449074607283, -0.04232363101125533, -0.042281885248235181,
	-0.048015442944752192, -0.047585514157637517, -0.047167903684233008, -0.047262905394320966,
	-0.046704252945391954, -0.046422659838940145, -0.046825127989554356, -0.046881514464009719,
	-0.046954576162025807, -0.046858862347287492, -0.046796498424689574, -0.04677491823010127,
	-0.046899210369441169, -0.046842904860737965, -0.046815716312837305, -0.046804301075517057,
	-0.04841386344842085, -0.04842890708465452, -0.048348438787756833, -0.04829940293188275,
	-0.048360476309301945, -0.048336785257647397, -0.048219075264328788, -0.048136814019489861,
	-0.048106986389706612, -0.048277506088952218, -0.048469235520474871, -0.048305811285319425,
	-0.047516567012417112, -0.047720542190533004, -0.046935122107338745, -0.046674344060068158,
	-0.053024812611022196, -0.052545836524125686, -0.05207321179315566, -0.052143662749345059,
	-0.051554232633464883, -0.051227875917838596, -0.051623298093107381, -0.05165146627061374,
	-0.051757766429849458, -0.051634967654271023, -0.051549673403443422, -0.051499465899276564,
	-0.051596141607480231, -0.051530223435280645, -0.051448061409119145, -0.051410940281669787,
	-0.053092481129506257, -0.053097920180221823, -0.053002558992240295, -0.052936176912120152,
	-0.05300077986827504, -0.052969719551718995, -0.052832743358175505, -0.05273907076618025,
	-0.052688815251840965, -0.052866651656477616, -0.053061374059923262, -0.052891411059007229,
	-0.052065713025218355, -0.052311604296298372, -0.051621461046186923, -0.0515073409458702,
	-0.057509142287163903, -0.057097813980652834, -0.056588991354025571, -0.056624330434584008,
	-0.055983607835965371, -0.055620162321045455, -0.055979174444066318, -0.055970900025304804,
	-0.056015514618479791, -0.055850509897934476, -0.055723592983552617, -0.055634531619146402,
	-0.055699967922437067, -0.055584978242111761, -0.05547746728077995, -0.055398675534958711,
	-0.057045393972933546, -0.057004496191021194, -0.056864385047539691, -0.056755410989125551,
	-0.056777473623711022, -0.056700283437308797, -0.056522051077074524, -0.056383229726997108,
	-0.05630957341221686, -0.056435749009329961, -0.056589083616165874, -0.05637321010438251,
	-0.055514040199413361, -0.055712330421294289, -0.054987098326349307, -0.054824298318360443,
	-0.060176368875535555, -0.06035233068980464, -0.059811764813915883, -0.059808424195788724,
	-0.059150981641836374, -0.058764093159200642, -0.059086173370852757, -0.059050200460891322,
	-0.059087710868512784, -0.058913927757579768, -0.058778281855983272, -0.058675615221202244,
	-0.058706662485758516, -0.058556227538824702, -0.05828815360415894, -0.057772323721290882,
	-0.059274074690685137, -0.059711361910453571, -0.059767865205674037, -0.059758161519947728,
	-0.059853966925273186, -0.059840750583107505, -0.059689268598939561, -0.059594202500410857,
	-0.059488506058000365, -0.059646470800981628, -0.059830686090934608, -0.059633095257444833,
	-0.058813497119611959, -0.059042139293339339, -0.058283157837832389, -0.058078103453395973,
	-0.064013287875203523, -0.063656366475483894, -0.063124147174867584, -0.063130801318229929,
	-0.062472625525691286, -0.062069819770563868, -0.062402271043542658, -0.062351859888629804,
	-0.062388018366493769, -0.06217517558671827, -0.062017610386371692, -0.061888059487295061,
	-0.061940983584747596, -0.061780548535333074, -0.061635508398720916, -0.061490273392326281,
	-0.06314936720255114, -0.063057601265310209, -0.062884703429192737, -0.062738263049056567,
	-0.062742819916612194, -0.062616487260823028, -0.06241026117341409, -0.062225133547731189,
	-0.062164686492032578, -0.062232547643611649, -0.062354777378544612, -0.062099258523936537,
	-0.061222534953092191, -0.061391325785949954, -0.0606083409285329, -0.060364714658425751,
	-0.066220350403364894, -0.065930715089211903, -0.0653414854427979, -0.065305560396445653,
	-0.06458413297051839, -0.064140470048084541, -0.064435389073088781, -0.064354480828297575,
	-0.064346099807506066, -0.064096393778193206, -0.06390166748895218, -0.06373903796985475,
	-0.063753144730599592, -0.063560377164454201, -0.063380998768050312, -0.063218195730621554,
	-0.064831403991987641, -0.064725839731253093, -0.064520616259241062, -0.064346930793132709,
	-0.064310437298252185, -0.064167406397615312, -0.063927599240495792, -0.063723912387824211,
	-0.063607648740675732, -0.063660458347986573, -0.063754691968877578, -0.063476802623556455,
	-0.06256469992008136, -0.062704128565332778, -0.061903199960623954, -0.061646111021108868,
	-0.067372313946119616, -0.067174126648938626, -0.066543552346149171, -0.066507601345667008,
	-0.065769191286563375, -0.065303939963518048, -0.065579344536709036, -0.065482091435956,
	-0.065308996345819562, -0.065202587224999289, -0.064968699311525685, -0.064780981243982294,
	-0.064691015613817043, -0.064480524512813789, -0.06428381888039511, -0.064112688072982121,
	-0.065662036436258203, -0.065526930617789969, -0.065294135205858653, -0.065093964686026087,
	-0.065034200344013915, -0.06486263544926929, -0.064599294789176503, -0.064367480461467133,
	-0.064243685521099825, -0.064256672081307378, -0.064326756827432635, -0.064019378857962522,
	-0.06309618412835391, -0.063200681569874101, -0.062386569404822304, -0.062160812150386456,
	-0.067273979030555389, -0.067433800640940247, -0.066847140805194882, -0.06677438037106867,
	-0.066032091678801128, -0.065568788942877557, -0.065802270931927503, -0.065682783511539583,
	-0.065592524933464555, -0.065318844097045678, -0.065089674805876449, -0.064896842891698822,
	-0.06486810597157816, -0.06463946034767469, -0.064441458247484068, -0.064250938632789981,
	-0.065671023060024564, -0.065511144269395374, -0.065269852530142294, -0.065055083484542559,
	-0.064976844500727007, -0.064789884202058612, -0.064515186919903739, -0.064272869243286276,
	-0.064132257327140535, -0.064109540274446805, -0.064154565566341637, -0.063847703323546778,
	-0.062969930710652197, -0.063038638659957472, -0.062271376758347818, -0.061996206283959195,
	-0.065675714505535041, -0.065652713444751334, -0.065245402296142133, -0.065083477796367292,
	-0.06503373092378148, -0.064502583295255614, -0.064545932720570742, -0.064345341079255172,
	-0.064582475637854311, -0.064333835938422151, -0.064129490892169308, -0.06385062081129092,
	-0.063517524811270612, -0.063351764301016841, -0.062891307314964937, -0.062612014286950499,
	-0.063316587026501656, -0.063580808812929643, -0.06334124791975014, -0.063004457513521753,
	-0.063002620582368468, -0.062780789659175301, -0.062122498217022558, -0.061608606954600811,
	-0.061026264883494157, -0.060619705315464317, -0.059784629671270725, -0.05824304804373414,
	-0.056825318529817197, -0.052119566409138923, -0.04624396830376095, -0.032639417551898385,
	-0.025817731300086053, -0.041096404431623393, -0.053401070346784839, -0.057670102256637816,
	-0.0608849011765503, -0.0619104612470463, -0.062776693474132672, -0.063127154315323189,
	-0.063778977992600863, -0.063762888575475365, -0.063635941536843099, -0.063643247695608571,
	-0.063979165192752069, -0.063846957006481173, -0.063772717879239021, -0.063603146713083827,
	-0.064966378938496439, -0.064886380619295497, -0.064565765632873709, -0.064418185437240302,
	-0.064193085616066695, -0.063964256831002833, -0.063811822682025371, -0.063607517199954014,
	-0.063796132578401873, -0.063802065092373988, -0.063693954852964974, -0.063508518200417224,
	-0.063229832152340584, -0.063161530099456076, -0.062348570298125898, -0.062217257863653362,
	-0.066013174220544285, -0.066037543254489336, -0.065478420294579148, -0.065401685740423474,
	-0.064703667889900632, -0.064280072892367285, -0.064485838626877512, -0.064369602157122646,
	-0.064270958738767675, -0.064025806655995263, -0.063800007458602231, -0.063611331849661307,
	-0.063556810414917272, -0.063342629957170882, -0.063145961360021138, -0.062971712156452669,
	-0.064216409343187217, -0.064123476368221854, -0.063913011943862286, -0.063711002024328278,
	-0.063630501843084455, -0.063469519213228048, -0.063202354952296563, -0.062977766625212372,
	-0.06276596706510662, -0.062763198448696961, -0.062806048287385494, -0.062511101046049358,
	-0.061645779666724271, -0.061691575288939725, -0.060986638827537638, -0.060769360286689778,
	-0.065719360957131684, -0.065701669990674116, -0.065076022141866724, -0.064976680306605639,
	-0.064219228831396358, -0.063751242455507381, -0.063950061380304526, -0.063810979990740369,
	-0.063700535731174984, -0.063425421134442508, -0.063173962273516376, -0.062959521373484331,
	-0.06288571415598386, -0.062643893454210106, -0.062421924034944121, -0.06222088706423444,
	-0.063552126929453348, -0.063425668752624426, -0.063167464970912066, -0.062931840230270736,
	-0.062793522826927642, -0.062596065422362082, -0.062294585960413117, -0.062049883784285588,
	-0.061914773887632682, -0.061905901699873367, -0.061942478598268409, -0.061623399702527913,
	-0.060717186145443962, -0.060764842438721538, -0.060010752332482598, -0.059748889997562858,
	-0.064732271153338933, -0.06470093208289833, -0.064054862455805897, -0.063936093119919726,
	-0.063158681225549268, -0.062672272933706502, -0.062850087074873176, -0.06269251740804696,
	-0.062558589276475299, -0.062264254879048915, -0.061994055759356875, -0.061761978704892737,
	-0.061672240798925304, -0.061412179099298719, -0.061175089629182576, -0.06095833227515296,
	-0.062283443200853113, -0.062138705920409237, -0.061866928000444514, -0.061622812931609441,
	-0.061499624099117828, -0.061290654590830898, -0.060983469359502829, -0.060716355943036975,
	-0.060510080112949317, -0.060466755909294685, -0.060476430342747925, -0.060139198607641241,
	-0.059233306520325948, -0.059254755480617247, -0.058494705555818365, -0.058216475719377006,
	-0.063080317422216703, -0.063051164878383775, -0.062393089750818281, -0.062258499601642495,
	-0.061472370641105237, -0.060974850702489182, -0.06113176347694553, -0.060958905883694743,
	-0.060808623167252517, -0.060501004634114036, -0.060216909383015188, -0.059970107551266034,
	-0.05986276520284628, -0.059588586440404795, -0.059336401788395103, -0.059104750561621067,
	-0.060381886961366878, -0.060223002199499456, -0.059937925890690351, -0.059679030992787201,
	-0.059539926845188468, -0.059316317664707491, -0.058994418079123805, -0.058712545080814596,
	-0.058482670267577988, -0.058419718279420142, -0.058410357532060281, -0.058059238626062729,
	-0.057147658834932918, -0.057147207581571768, -0.05638226493123899, -0.056088626601106882,
	-0.060654229321423864, -0.060735458634850782, -0.060071447136862008, -0.059918404297321939,
	-0.05912296480661039, -0.05861477514838738, -0.058745588341410734, -0.05855463671267596,
	-0.058349796033139063, -0.05802923851329303, -0.057726710962653735, -0.057460180233115873,
	-0.057311835192066778, -0.057000790470884764, -0.056677060877330571, -0.056301181257791343,
	-0.05761530398449384, -0.057558734550545693, -0.057297352745463777, -0.057042421172123575,
	-0.056893002228748664, -0.056660590321358895, -0.056338976456962557, -0.056052660189187774,
	-0.055840151386258613, -0.055770828246736494, -0.055755322795784122, -0.055401900156273803,
	-0.054490739443653215, -0.054494064303546461, -0.053711702403666788, -0.053400192850802164,
	-0.058226776961836049, -0.058222183450470061, -0.057542045618229558, -0.057393479599251784,
	-0.056586076607362909, -0.056071220266632818, -0.056215027030769832, -0.056027631210057507,
	-0.055867905512624869, -0.055544801950407507, -0.055244999964833237, -0.054982676563692205,
	-0.054861805090546549, -0.054572365794940118, -0.054304198810033129, -0.054057643601206518,
	-0.055347921499728225, -0.055176239975514317, -0.054874446319678936, -0.054601868846727256,
	-0.054449232942600678, -0.054211130387000414, -0.053876546794183862, -0.0535813482070229,
	-0.053350730563714768, -0.053274554556651595, -0.053255030542078342, -0.052890675536264364,
	-0.051964397993585223, -0.051955125047334315, -0.051171751311204598, -0.050865247909934207,
	-0.05546429805792169, -0.05554276108054558, -0.054862940584672226, -0.054703534583060882,
	-0.053904079063133506, -0.053392036115910695, -0.053507968004664626, -0.053310457036709162,
	-0.053137718038150858, -0.052810593413608622, -0.052503929858503412, -0.052232834730547038,
	-0.052093770725053404, -0.051797874719542648, -0.051519560864025121, -0.051264922328159428,
	-0.0524533206578554, -0.052283182132490835, -0.05197413199106652, -0.051694956083029979,
	-0.051530627426918094, -0.0512848699599215, -0.050944051670151341, -0.050642602951529982,
	-0.050389894461787176, -0.050298325715287272, -0.050260259104388798, -0.049893528157497764,
	-0.048991134599802907, -0.048967603378584267, -0.048202760706798915, -0.047889899573477578,
	-0.052597190779314663, -0.052594741494459051, -0.051904523872421303, -0.051747416386687506,
	-0.050930751782234059, -0.050397292379319183, -0.050537748653147266, -0.050338819275941964,
	-0.05020280261773883, -0.04986320122351675, -0.04955637115218213, -0.049280749195744607,
	-0.049142408093128441, -0.048843152571296393, -0.04855447017972727, -0.048292913293742017,
	-0.049636040859176694, -0.049435162246152513, -0.049128714838154071, -0.048841628156707236,
	-0.048686705250047292, -0.048438159591430614, -0.048087178511512563, -0.04777740634782477,
	-0.047529623313621407, -0.047436947243223754, -0.047412721191001796, -0.047034604138527773,
	-0.046081350142264076, -0.046062179664606191, -0.045253547324906544, -0.044926327118121216,
	-0.049724689755586832, -0.049656917711888612, -0.048977180849121491, -0.048800891465247326,
	-0.047994156434879587, -0.04746460542230832, -0.047577700599980587, -0.047365194660150753,
	-0.047186759347114034, -0.046839857071610883, -0.046523314035829273, -0.046241345688094924,
	-0.046100605791028364, -0.045791887219881595, -0.045505094964761204, -0.045235660852430776,
	-0.04648039580874655, -0.046271418896712241, -0.04595712422457824, -0.045665938953569636,
	-0.045496430116460901, -0.045238891798941736, -0.044889945741866943, -0.044577066611749407,
	-0.044338892607862973, -0.044231472837621223, -0.044189744037384376, -0.043811881590090529,
	-0.042889283067476268, -0.042854355302301715, -0.042063735056015843, -0.0417333214759424,
	-0.046312051119495899, -0.046268743564111835, -0.045597734082805645, -0.045414308124794064,
	-0.044619564116854984, -0.044093959159477156, -0.044191950013259242, -0.043973750792991949,
	-0.043787749079262923, -0.043440292801570704, -0.043121475781490864, -0.042836336536372609,
	-0.042688079066187268, -0.042376929822163338, -0.042087608405239979, -0.041815227709927065,
	-0.043005377892947026, -0.042795330188806338, -0.042479277956801731, -0.042185806779051579,
	-0.042009431789876733, -0.041748839662063691, -0.041399569567307129, -0.041085665580866022,
	-0.040843350831297413, -0.040727605254519531, -0.040675800609754773, -0.040299134020023268,
	-0.039394908101751724, -0.039348830630150357, -0.038574031212239478, -0.038245608048733011,
	-0.042644330545383885, -0.042629776065253727, -0.041966851130471876, -0.041779628193675672,
	-0.040994125317041163, -0.04047373492402339, -0.040561441491311495, -0.040341063024170488,
	-0.040146066512046809, -0.039801219582228549, -0.039481482327101317, -0.039195906068089065,
	-0.039043560157701211, -0.038731886350360192, -0.038443513781785274, -0.038171744104648818,
	-0.039317972593616753, -0.039112083649787299, -0.038795060541923172, -0.038501862288451788,
	-0.038320251103053704, -0.0380589507272759, -0.037711320916357857, -0.037398682556272121,
	-0.037155418634421747, -0.037035981205854079, -0.03697779744591554, -0.036603478576626512,
	-0.03571402633691511, -0.035660980811271052, -0.034899551914996399, -0.034575315198297242,
	-0.038850851924784727, -0.038865411503288504, -0.038207002435536798, -0.038018723110223175,
	-0.037237732224407953, -0.036721232591005674, -0.036803919276728783, -0.036583381068396273,
	-0.036382494539436504, -0.036040694113458276, -0.03572068468874362, -0.035435474268805812,
	-0.03528077845901198, -0.03496930949468622, -0.034681918087088398, -0.03441138989903552,
	-0.035530855121372211, -0.035329217458890998, -0.03501182410553022, -0.034718962071627307,
	-0.034534406014752314, -0.034272993233176605, -0.033926140883075322, -0.033614332311265052,
	-0.033369806313901351, -0.033247755581288785, -0.033185902585182683, -0.032812829067634962,
	-0.031932041738536948, -0.03187418060922096, -0.031121331847619494, -0.030800008154468209,
	-0.034959169504177545, -0.035009324201480299, -0.034356694292843014, -0.034166555182339728,
	-0.033393081765823396, -0.032881417833031716, -0.032956287269906202, -0.032734627203717725,
	-0.032529145538667856, -0.032191088120355926, -0.031870798865414114, -0.031585222830166806,
	-0.031425290303286127, -0.031113994798842606, -0.030825956502601195, -0.030555924434997224,
	-0.03163325220521223, -0.031438797068112062, -0.031120984906988249, -0.030827743024652614,
	-0.030637952545908533, -0.030376708684361483, -0.030029372189831566, -0.0297185368040245,
	-0.029461667162797328, -0.029338254168994098, -0.029269628547365981, -0.028898380788365985,
	-0.028027366531198739, -0.027963118825607269, -0.027222623937241619, -0.026906795033053595,
	-0.030838067669664286, -0.030960498394329843, -0.030315936682185077, -0.030120472862334383,
	-0.029360577652703966, -0.028857738425797357, -0.028915103593143168, -0.028689749897427633,
	-0.028475449171436788, -0.028142046017041841, -0.027821268230575805, -0.027534356500341185,
	-0.027363181112884868, -0.027052237061996255, -0.026761239066635179, -0.02649005842643766,
	-0.027488550584934476, -0.027303481227776483, -0.026985105294035409, -0.026690447461760664,
	-0.026493102345275993, -0.026230222799626276, -0.02588308914277497, -0.025571512399406294,
	-0.025314901849013451, -0.025176783844851936, -0.025097827353403743, -0.024727924631794979,
	-0.023884955475626395, -0.023804027895090046, -0.02308717468767894, -0.022770278738404769,
	-0.026357442244313245, -0.026538163814644637, -0.025929166117368341, -0.025727455355071004,
	-0.024998875775459999, -0.024511445469705646, -0.024544378177048274, -0.024314798567424092,
	-0.02409167253825887, -0.023761261753412699, -0.023443932913480348, -0.023156962261195055,
	-0.022978059204654164, -0.022669869235652448, -0.022381114593860631, -0.022105718278688794,
	-0.022996088614564984, -0.022799832360908739, -0.022495331467962544, -0.022202760592309276,
	-0.022001627296213418, -0.021739554725238076, -0.021399866244136624, -0.021091179987516421,
	-0.020804102430958663, -0.020681152427017849, -0.020590090256340867, -0.020231698007112487,
	-0.019431839584415637, -0.019345308447418556, -0.018668944541878157, -0.018358513064530187,
	-0.017447482644161901, -0.017545792416340588, -0.016955096588587289, -0.016755391654071774,
	-0.016056317885717715, -0.015587581854201733, -0.015619264140031801, -0.0154278012221693,
	-0.015175698352971804, -0.014853993982967375, -0.014548437735488568, -0.014275590486692531,
	-0.01411194893426825, -0.013816143432125887, -0.013552352681481548, -0.013314244937718555,
	-0.014186299916876375, -0.014003183454318287, -0.01369494524034021, -0.013416441424333353,
	-0.013228609101714918, -0.0129810740288625, -0.012665683679465238, -0.012379292544565587,
	-0.0121530239510636, -0.012022471050584242, -0.011947411561225805, -0.011611818004880925,
	-0.010850484405365927, -0.010776494116712373, -0.010117852397051579, -0.0098434093755044062,
	-0.013186335304483175, -0.013407916923750901, -0.012827544442717812, -0.01266216881994945,
	-0.011977466956508928, -0.011532534614842197, -0.011597956267969509, -0.011410510845771297,
	-0.01121750945380476, -0.010930491155946695, -0.01065248240003016, -0.010406561527955972,
	-0.010273895886972329, -0.010002437231980715, -0.0097588631616821932, -0.0095245154719983457,
	-0.010452946739705916, -0.010294257047972741, -0.010018979341147406, -0.0097689514550933013,
	-0.0096084268818621404, -0.0093852414551791746, -0.0090892950286909913, -0.0088242901104426067,
	-0.0086236758729091138, -0.0085164988429192942, -0.0084657176319934691, -0.0081497705468680549,
	-0.0074051845954283147, -0.0073541547616575737, -0.0067204628741835189, -0.0064543062815360886,
	-0.0098767080514624832, -0.01007570730385254, -0.0095171834626439269, -0.0093603251274253611,
	-0.008694395799718849, -0.0082657691471911196, -0.0083381479710983031, -0.0081566804120772347,
	-0.0079772588830540093, -0.0077027387639846401, -0.0074359789620457592, -0.0072006546164247419,
	-0.0070734768957023226, -0.0068174108416666386, -0.0065817295924188064, -0.0063611083122074611,
	-0.007294383904558846, -0.007153229196606401, -0.0068904750598427662, -0.0066498038435516054,
	-0.0064980438617598859, -0.0062852244900980644, -0.0059990752355577838, -0.0057435011710858961,
	-0.0055453333028883849, -0.0054479638713028416, -0.0054033735456322559, -0.0050962231428175221,
	-0.0043617572679044555, -0.0043196204894463009, -0.0036947861202971219, -0.0034338396855137037,
	-0.0067637784390181255, -0.0069931616965161767, -0.0064506813270268906, -0.006300199598442564,
	-0.0056554673207340799, -0.0052369571620398186, -0.0053086903713955623, -0.0051326765670405136,
	-0.0049653219974047777, -0.004695415981124957, -0.0044370078047840386, -0.004208346686646402,
	-0.00408586577889547, -0.0038358228650628417, -0.0036069601305717086, -0.003392679701028559,
	-0.0042962511399560208, -0.0041548518050155926, -0.0039011145679042638, -0.0036687519833555064,
	-0.003523679993072089, -0.0033180440051613991, -0.0030420911769456849, -0.0027956822773144703,
	-0.002604807022342621, -0.0025100756270912093, -0.0024680326997157049, -0.00217245925357098,
	-0.0014649249822354814, -0.0014254140402729192, -0.00082410069628939412, -0.00057439382013403574,
	-0.003758399724017415, -0.0039921180120904608, -0.003471371567262873, -0.0033265246542849665,
	-0.0027087946356698848, -0.0023069158177169437, -0.0023747559796283772, -0.0022050764804511531,
	-0.002044296666405895, -0.0017842633512993714, -0.0015357471575967638, -0.0013154018286127519,
	-0.001196845589890588, -0.00095571494142824296, -0.00073507445575661566, -0.00052805883784667017,
	-0.0013874174484589006, -0.0012513669221652381, -0.0010063049456640989, -0.00078166768766098924,
	-0.00064037853946597074, -0.00044114844126755482, -0.00017459535491510435, 6.3811743322745616e-05,
	0.00024798997976912548, 0.00034320383518328059, 0.00038647172268387503, 0.00067210616939668223,
	0.0013498803361757137, 0.0013920718655363181, 0.0019689398240543363, 0.0022107644337153952,
	-0.00077031050829178785, -0.0010544613636725843, -0.00055102784441729514, -0.00040993274987158844,
	0.00018767725963662356, 0.00057571547636800339, 0.00051251486589477292, 0.00067755353055510648,
	0.00083762409782816563, 0.0010888201968603185, 0.0013301040438756556, 0.0015438368791110056,
	0.0016590344652090113, 0.0018933057129167071, 0.0021064850347925919, 0.0023072302136042419,
	0.0014893386953318433, 0.0016165361984594871, 0.0018544790123880561, 0.0020718291650607388,
	0.0022099646751599627, 0.002403199670356999, 0.0026603551293620273, 0.0028908150506744032,
	0.0030653394390642071, 0.0031603460574475585, 0.0032031637687883045, 0.0034787331891019051,
	0.0041293232401175698, 0.0041715548507115447, 0.0047266534232666951, 0.0049597818538373636,
	0.0021787269574517119, 0.0018147043190656165, 0.0023009279116691472, 0.0024361779125253989,
	0.0030135071414967469, 0.0033862913467154658, 0.0033245398786472895, 0.0034827265334994445,
	0.0036378184695902271, 0.0038772819681360416, 0.0041087934821566995, 0.0043135136421392417,
	0.0044228297301702234, 0.0046472379721862649, 0.0048510535484879696, 0.0050429214866462152,
	0.0042596901270672343, 0.004374490850579036, 0.0046017025475065341, 0.004808661209788935,
	0.0049394512416573479, 0.0051229272601496893, 0.0053676384776825733, 0.0055866793998065592,
	0.0057481235781642517, 0.0058401184675352944, 0.0058783479018923038, 0.0061399758110321431,
	0.006759360363899446, 0.0067982645995358819, 0.0073272966325787729, 0.0075481633765413043,
	0.0049936594827956959, 0.0045094703500342392, 0.0049757222836469646, 0.0051007722846446802,
	0.0056585800870455642, 0.0060134940561474524, 0.0059470979290533917, 0.0060942632610863322,
	0.0062483630408851623, 0.0064740791774188329, 0.0066945149572158131, 0.0068875104648817567,
	0.0069857198295764167, 0.0072009693605911262, 0.0073919470626676474, 0.007574710711115545,
	0.0068174271895521353, 0.0069166043569340446, 0.0071401369335849455, 0.0073405114141985115,
	0.0074737879361426174, 0.0076563854013345827, 0.0078946651893547892, 0.0081115789182683827,
	0.0082504185001841934, 0.0083549183511629349, 0.0083993035154281484, 0.0086605240366399976,
	0.009264904633489994, 0.0093272085296490764, 0.0099440390224673943, 0.01025862010570202,
	0.0074840383541654194, 0.0070862806449509888, 0.0075281430943164246, 0.0076344710651292252,
	0.0081419311519296544, 0.0084724281904125752, 0.0083923006633586615, 0.0085212439491303815,
	0.008615492977850945, 0.0088158335996532718, 0.0090083618012407017, 0.0091791087434138115,
	0.0092619392883868095, 0.0094399564013334311, 0.0096261918765988917, 0.0097841585215751488,
	0.0090027071548406477, 0.0090835727374548939, 0.009272517139890666, 0.0094409583321290284,
	0.0095347958381430762, 0.0096803104582343612, 0.0098838365503176196, 0.010062294866628926,
	0.010171397588119441, 0.010234719409886897, 0.010245250083692986, 0.010459869671004658,
	0.011010361497055279, 0.011012767336348364, 0.01150081093715744, 0.011677890931035479,
	0.0093623187049601368, 0.0088498403806036175, 0.009242026984912291, 0.0093266608413804832,
	0.0097881995160244584, 0.010075429945890819, 0.0099872445085471741, 0.010088850704936607,
	0.010176580458695758, 0.010341789232523491, 0.010501579453486691, 0.010638230556826353,
	0.010689501904514322, 0.010836901063853686, 0.010975117257526238, 0.011095978746829377,
	0.010368568794800453, 0.010410467368419125, 0.010558648475102647, 0.010684703583132579,
	0.010743074125521754, 0.010847624111186286, 0.011001674942605002, 0.011133532307601125,
	0.011192244261085373, 0.011221093361009855, 0.011197610506277692, 0.011361764033168752,
	0.011827370957664608, 0.011799417375669733, 0.012209950177609801, 0.012341606932018393,
	0.0091218757766465056, 0.0096589417823369546, 0.01001174141634509, 0.010067326147754012,
	0.010496226164098727, 0.010758183291091657, 0.010670288853912835, 0.010765333885756706,
	0.010859700258182578, 0.011037082384644605, 0.011212705859438963, 0.011366077687081009,
	0.011417655687090945, 0.011526712231996044, 0.01141957226977461, 0.010790040612009,
	0.0099848890129367041, 0.011054368239441462, 0.011621005192014833, 0.011995329633215682,
	0.012298176281133565, 0.01257834193511098, 0.012824893535435963, 0.013081459418917257,
	0.013166018821736824, 0.013322140118637528, 0.01343519685210254, 0.013665056459659765,
	0.014180640270856538, 0.014288080871153396, 0.014603916777586334, 0.014660507288216469,
	0.013281823904179981, 0.012683814594213723, 0.013083844781848909, 0.013202343515132173,
	0.013674837418259119, 0.013940383854119972, 0.013921038413585508, 0.014023711311159332,
	0.01420896682881833, 0.014351226322529925, 0.01452944069276434, 0.014664592203238258,
	0.014787101625390757, 0.014918232457758, 0.015063266084175688, 0.015127067410847878,
	0.014701448716461573, 0.014712097542883657, 0.014869813825011005, 0.014997919333600528,
	0.015113859030444054, 0.015196586110739331, 0.015368601061098256, 0.015480738280941085,
	0.015657121344590724, 0.015668863203478958, 0.015684725084208456, 0.01583635361788182,
	0.016274034022801101, 0.016288010376696464, 0.016614693292287212, 0.016653469283710542,
	0.015211981390758319, 0.014619382379881248, 0.014936158255212261, 0.015001461234723989,
	0.015361273409162301, 0.01557611651218121, 0.01552092572577639, 0.015600419715805565,
	0.015704493727421158, 0.015803629450375903, 0.015939469614221855, 0.016044205337259032,
	0.016119164994200338, 0.016218248777349738, 0.016329908802486387, 0.016397671442797808,
	0.015911003263880355, 0.015932224374100273, 0.016056338225148917, 0.016163458400172435,
	0.016218790527974807, 0.016307579913400348, 0.016440837088809022, 0.016553113805153251,
	0.016615415714328043, 0.016659642184635042, 0.01665338890658925, 0.016793218878617986,
	0.017157083275533426, 0.017157888688162728, 0.017461719324024561, 0.017517221604254545,
	0.016415554859770674, 0.015800957809063269, 0.016046321655041076, 0.016177256036738797,
	0.016548510658069473, 0.01675031964602159, 0.01673829406732897, 0.016857744366548667,
	0.016932292300839574, 0.017337750185357298, 0.017399833736525719, 0.017447619202310298,
	0.017135257735045595, 0.017173113388556108, 0.017284140460742996, 0.017377998151433503,
	0.016698277351687066, 0.016666001436296089, 0.016742197214051395, 0.016825850064784285,
	0.016844246578061571, 0.016897708672518018, 0.017021983238386072, 0.017109181304501828,
	0.017229917619407623, 0.017237822001858156, 0.017218250080135653, 0.017323635636777444,
	0.01767427202541029, 0.017648515468031235, 0.017942184631878192, 0.018305929836218354,
	0.01652519673065133, 0.016579371630789701, 0.016851341020343316, 0.016904624381139908,
	0.017146807316332998, 0.017319802027249941, 0.017314506746055943, 0.017403941370814118,
	0.017388576551973921, 0.017502106546015129, 0.017623753928118248, 0.01775096276186993,
	0.017860494712037212, 0.017958116871405163, 0.018129860170331795, 0.018244595729791525,
	0.017817319268297188, 0.017813856781972365, 0.017909260223543937, 0.018005555874082046,
	0.018042851205716217, 0.018117170859669844, 0.01824551276407976, 0.018357920791277207,
	0.018464385292968552, 0.01852983364685324, 0.018550845884453854, 0.01870304923887918,
	0.01904083361947484, 0.019094150340807605, 0.019400361829480191, 0.01956063488269108,
	0.021763967705074324, 0.018391588048355369, 0.018805338776096629, 0.018650691169360824,
	0.020731952834876066, 0.019947384116850361, 0.02025988535793654, 0.02029736864718212,
	0.019017157261143693, 0.018805226476625515, 0.018781640737665063, 0.018813589318353075,
	0.019043815037780881, 0.018937351531183703, 0.019245135849814507, 0.019378734448892088,
	0.018801549196122858, 0.018552876013847676, 0.018632231370286675, 0.018691131739787693,
	0.018738827376442915, 0.018765088012973302, 0.018869052328749771, 0.018916193341225365,
	0.018773051427574967, 0.018910113997402368, 0.018917154100667986, 0.018948188153062928,
	0.018921593073953989, 0.018851085542897949, 0.018694546922207605, 0.015436564630266748,
	0.016146584637816319, 0.013621135636947916, 0.011820599381771454, 0.011013332518572453,
	0.010537246593416089, 0.010461373537287846, 0.010149567494937643, 0.010009805563804822,
	0.0101123791086777, 0.010072975055548623, 0.010161501991210024, 0.010186932644804053,
	0.010203299581041729, 0.010307765982553077, 0.010254503545932495, 0.010160827785820316,
	0.0097475561619404932, 0.010156546085867836, 0.010365253575585941, 0.010324533636794322,
	0.01056202603218802, 0.010715102264819405, 0.010491410059112737, 0.010408097879641705,
	0.0088340828874337585, 0.0092267239409956764, 0.009092982320368783, 0.0095130039460396085,
	0.011195172200170895, 0.011258811225405466, 0.00937755562021674, 0.010076950884458558,
	0.011248830916426766, 0.011477996175253267, 0.011898955873062177, 0.012133949734365579,
	0.012567951510462076, 0.012904302837467876, 0.01303833778960618, 0.013261467261654329,
	0.013528936445029656, 0.013791653624375245, 0.014033141932434209, 0.014252306941430877,
	0.014408939003649467, 0.014650636273792301, 0.014848573903932041, 0.01507107172962938,
	0.014786989055754042, 0.015071763556209631, 0.015397944605825296, 0.015636621017251336,
	0.015902486313326556, 0.016168351919198194, 0.016384562604940933, 0.016613852523417839,
	0.016654478260112623, 0.016836550370545884, 0.017020964413850571, 0.017240073397999236,
	0.01749134358426058, 0.017582577691472669, 0.017873080100141474, 0.018174888292380821,
	0.017678194338778468, 0.017756892474394586, 0.018026888802356925, 0.018174740173284014,
	0.018487852884397894, 0.018717799136167817, 0.018778332102308531, 0.018918402280005076,
	0.019126505176425886, 0.019309519672259412, 0.019479074135225601, 0.019619646103826001,
	0.019689818207078304, 0.019849450249335297, 0.019951526623607638, 0.020065556196418293,
	0.019604688819119601, 0.019726331833968762, 0.019839988659046445, 0.019891803982002732,
	0.019661262520258543, 0.019705354076864197, 0.019801356060976407, 0.01999129487518022,
	0.020599166396455773, 0.020776701525926689, 0.020911655966672583, 0.021072123452892211,
	0.021305856527145582, 0.021417594207049945, 0.021575208180866483, 0.021680142130243954,
	0.021188734515621872, 0.021180886168096168, 0.021366883852984846, 0.021449202101563893,
	0.0216582238852744, 0.021807584844544651, 0.021827733892859198, 0.021911027938353915,
	0.021989092113396894, 0.022095197562674956, 0.022196355352690281, 0.022287492991508839,
	0.022348720644473092, 0.022441373071729394, 0.022530843577037517, 0.022612929318588826,
	0.022387431139587008, 0.022450033477581843, 0.022541678101812297, 0.022624335426279282,
	0.022683832545006749, 0.022758134514637252, 0.022848617542318306, 0.022930882002682677,
	0.023007161901786626, 0.023029512635957941, 0.023056475232181434, 0.023147057833866402,
	0.023363905461012167, 0.023367285836619664, 0.023545857765750616, 0.023613457431555795,
	0.02278120036269746, 0.022765911356269101, 0.022904410810657954, 0.022946588064908065,
	0.023106885789571943, 0.023212964347508382, 0.023200493063152899, 0.0232455616984754,
	0.023287763494164514, 0.023355591212258765, 0.023417921920808719, 0.023470680902119151,
	0.023496599715041117, 0.023550468779376381, 0.023599787339654354, 0.02364176412527812,
	0.023382769670545107, 0.023416453217479052, 0.023468262565876832, 0.023508530529706872,
	0.023529431716377034, 0.023562014785839629, 0.023605924363215503, 0.023641536226091213,
	0.023660364492406719, 0.023636834288802769, 0.023617028455103758, 0.023655808451848923,
	0.023813930718804398, 0.023761464670578165, 0.02388796130481621, 0.023898607490440434,
	0.022369277575071251, 0.022897320122220417, 0.022955618605194961, 0.022932444182722795,
	0.022982885040031389, 0.023003629884925988, 0.022931268031493469, 0.022892457376336665,
	0.022722857232172888, 0.022710251179110831, 0.022649145656287378, 0.022583452393861378,
	0.022460454818542509, 0.022263213360611767, 0.021877986982434785, 0.021135166223696707,
	0.021198674559373881, 0.021969780730968863, 0.022279371772040136, 0.022341199671972525,
	0.022383413279201354, 0.022393247567617333, 0.022397423302134612, 0.022385345107195743,
	0.022307294647308837, 0.022410909605762811, 0.022388558202823428, 0.02241695508649787,
	0.022420231429157764, 0.022533832811818113, 0.022444265149187501, 0.022332968875674198,
	0.022186063206767092, 0.022089524047745425, 0.02216007870542671, 0.022174216538096609,
	0.022264100422070741, 0.022313552241469362, 0.022301575112958587, 0.022318292566728341,
	0.022347703554334134, 0.022373613290339676, 0.022403374034072717, 0.022425395215177509,
	0.02243667414025002, 0.022459963553616506, 0.022477921281346524, 0.022489765741667264,
	0.022372142888152768, 0.022370814896780323, 0.022390019942158439, 0.022403364859197052,
	0.022407985002851401, 0.022416303434473137, 0.022431542658931845, 0.022441418057283453,
	0.022453183651639015, 0.022431717277903596, 0.02241503562723899, 0.022426933091595311,
	0.022502630204404572, 0.022468359153510777, 0.02252294201840823, 0.022517271473762347,
	0.022264982671136292, 0.022036192360293933, 0.022067974605363649, 0.022050883219732413,
	0.022093016538021516, 0.022105885134118829, 0.022063493684014047, 0.02204942313545203,
	0.022027102778082324, 0.022022202484383996, 0.022013894871119311, 0.02200234733354503,
	0.021976660171665403, 0.021964091826830217, 0.021952978117182075, 0.021937691123038349,
	0.021793773846763471, 0.021752931980865711, 0.021737634041058055, 0.021719588773035616,
	0.021689150788875171, 0.021667204151252607, 0.021651132974651741, 0.02163224161421581,
	0.021617957162922186, 0.021559071097235993, 0.021515886264758019, 0.021496942004233334,
	0.021552817373149038, 0.021470547282327057, 0.021510029087019416, 0.021473632957377493,
	0.02036264680153663, 0.021006639514043364, 0.02096894836994953, 0.020933697065428174,
	0.020924220198599353, 0.020929455884677886, 0.020854096466261161, 0.020817388380760787,
	0.020748483213400976, 0.020738455037074534, 0.020706463077141933, 0.020673831902068469,
	0.020625039781397733, 0.020591487273264149, 0.020560301908902394, 0.020525316700582066,
	0.020285453728667861, 0.020269478419415149, 0.020235082487727866, 0.020200051779080613,
	0.02014749384756407, 0.020108513511771016, 0.02007742251775364, 0.020043152184394657,
	0.019997850563703012, 0.019932059799662338, 0.019866760465239958, 0.019836324488025209,
	0.019873901702755988, 0.019798295995550021, 0.019823304647563277, 0.019789789649413064,
	0.018944878170136559, 0.019098151040354845, 0.019094119577843592, 0.019040019552899398,
	0.019045563255483466, 0.019033884545606138, 0.01893899438930384, 0.018887346902460134,
	0.018812642731849485, 0.01878128663784227, 0.018736146235256872, 0.018688708095845746,
	0.018619903053193356, 0.018573014815860361, 0.018526375088814547, 0.018477807295899224,
	0.018201381278572942, 0.01816475483362805, 0.018116307426549627, 0.018065725327891233,
	0.017996168922283746, 0.017941728379641246, 0.017895301903831502, 0.01784603383656733,
	0.017779143091070298, 0.017697467471378531, 0.017612969446386805, 0.017568431790950034,
	0.017597468870002068, 0.017502813042747378, 0.017520568273860528, 0.017474060912042826,
	0.016588524839818965, 0.016656270987516025, 0.016646121796251481, 0.016573994842830585,
	0.016575977691089268, 0.016553273382086307, 0.016434725655762296, 0.016365743177816507,
	0.016274283692004485, 0.016227333184457338, 0.016167202547240727, 0.016103826543513475,
	0.016015489854506702, 0.015953511861954543, 0.015890636217371724, 0.015825966594170494,
	0.015506178898500098, 0.01544709534821463, 0.01538384892561916, 0.015316957104466535,
	0.015228954984868771, 0.015157726409596801, 0.015095837147261896, 0.015030695770290856,
	0.014939259361529636, 0.014843403871648274, 0.01473700062122738, 0.01467793738930279,
	0.014697012262571588, 0.014585036658425482, 0.014593041641857185, 0.014531621887545802,
	0.013589751353269593, 0.013579119665199316, 0.013562072097705965, 0.013470128830101777,
	0.013468340067850719, 0.01343215804917003, 0.013289332092315087, 0.013201189222148435,
	0.013094340583115642, 0.0130293228193062, 0.012952958258660201, 0.01287219988863157,
	0.012764115956846843, 0.012686016109551846, 0.012604808289770774, 0.012521945786576123,
	0.012168526123833274, 0.012084345458647469, 0.012004311833905705, 0.011920429146968392,
	0.011814041553162983, 0.01172464696444827, 0.011647323235620774, 0.011565326091895803,
	0.01146008919017979, 0.011345006588393464, 0.011217399278736931, 0.011143244245111631,
	0.011155286436371618, 0.011025116312937773, 0.01102021653447848, 0.01094035683298638,
	0.0099612971343813507, 0.0099341725638150222, 0.0098983364166729225, 0.0097908803654758753,
	0.0097692311589088806, 0.0097130639140642731, 0.0095606678718923917, 0.0094569635281376973,
	0.0093369010660437606, 0.00925169307781833, 0.009159958446803014, 0.0090644008661828167,
	0.0089498289271880069, 0.008855260688134893, 0.0087615537162365701, 0.0086626500038585914,
	0.0083169501849176125, 0.0082292862490873746, 0.0081338298786362475, 0.0080379800572595618,
	0.0079189881654587162, 0.0078170202652912118, 0.0077299188370803483, 0.0076367241097417661,
	0.0075250064846284102, 0.0074063593892679195, 0.007270342614289738, 0.0071868259048960825,
	0.0071788105159079569, 0.0070438319497470835, 0.0070183431239983713, 0.0069261560279675486,
	0.0059735745760948816, 0.006059372855947316, 0.0059958120557998366, 0.0058891929056488776,
	0.0058228111068993884, 0.0057593281241503673, 0.0056238960461647948, 0.0055203506878620419,
	0.0053373243835699458, 0.0052971590513336258, 0.0051973436567868724, 0.0051170814776934151,
	0.0049924383490356104, 0.0049097335687839899, 0.0048319396389657886, 0.0047650553330192292,
	0.0042841783273967074, 0.0043412463168424611, 0.0042553316837692359, 0.0041972836839023527,
	0.0040444576691156565, 0.003993028024317247, 0.00392282919149554, 0.0038736430094626897,
	0.0035267440851396541, 0.0035438575912459798, 0.0034098877548391238, 0.0033535333446043864,
	0.0031942018893760891, 0.0031313505232857322, 0.0030295781935335848, 0.0030028742138449313,
	0.0024015615486454233, 0.0026252582891859084, 0.0024991346708390445, 0.0025022172210563132,
	0.0024017693703332348, 0.0023882349434249735, 0.0023646337321602778, 0.0023444170494381815,
	0.0022292365370352573, 0.0022398553869559458, 0.0021779105523290114, 0.0021385099451734333,
	0.0020382095206453728, 0.0020008964221934281, 0.0019020171788754401, 0.0018323958015215537,
	0.0017574419959477785, 0.0018715592027624421, 0.0017767277656341089, 0.0017636298933893083,
	0.0017157084245518217, 0.0017070733422165593, 0.0016648835216198608, 0.0016478736545188582,
	0.0016908547644853725, 0.0016963071763177419, 0.0016748325602946215, 0.0015735379802479458,
	0.0013619302281940174, 0.0013390465578228018, 0.0011610201986190563, 0.0010939846900459636,
	0.00028272293208672509, 0.0015443992714719824, 0.0015468505069445087, 0.0014868805759290936,
	0.0013636485562396601, 0.0012603246108922178, 0.0012197672782020314, 0.0011491153551807642,
	0.00107510955279097, 0.0010038669683704712, 0.00093191936933323329, 0.0008555618374443218,
	0.00071804232140866943, 0.00071630283457932724, 0.00058894332868081767, 0.00049703707449264424,
	0.00023881406308491295, 0.00026568526020033278, 0.00046116688405917542, 0.0004072739212509317,
	0.00035061359634807866, 0.00033155344348886418, 0.00030729717131190574, 0.00028580864217455428,
	0.00022603765528315115, 0.00022284087719096955, 0.00021224550328078991, 0.00018514371079332635,
	0.00016889006057443443, 0.00011988876633902204, 0.00012380043335020365, 0.00011759555826677157,
	0.0029696128179192848, 0.0037505810344843106, 0.003470202983512671, 0.0034510252148165954,
	0.0032507136434051496, 0.0030946814531565953, 0.0029941071447352227, 0.0023882249985106253,
	0.0026966695961052785, 0.0026265128475475887, 0.0024919242967111409, 0.0023671443251341,
	0.0022513186880784839, 0.0021278115765262337, 0.0018686622947795349, 0.0014363913645708461,
	0.0016879738831651044, 0.001682979744734433, 0.0016914861940503126, 0.0016443937389958366,
	0.0015396762737899506, 0.0014364825036027973, 0.0013222398152465066, 0.0012135123211982439,
	0.0010761398376591702, 0.0010205085151785906, 0.0009381971056542038, 0.00083325413636680279,
	0.00057347072565389718, 0.00062975812413805466, 0.00074729805182213672, 0.00022573922980003331,
	0.00090663427681825324, 0.00101432388965808, 0.00073281804095697933, 0.00092277122399481929,
	0.00067843757466509453, 0.00060895465166571302, 0.00071776913833752009, 0.00074035023332399963,
	0.00079041636326181684, 0.00077257895776937043, 0.00075186182609265754, 0.00074385907109339705,
	0.000747646634697334, 0.00074048899464100679, 0.00074206331630016775, 0.00072971466507422737,
	0.00087794840135787698, 0.00084551380105069311, 0.00081780351515535813, 0.0008085821007782929,
	0.0007990105717727013, 0.00077866891323465385, 0.00077974234925957931, 0.0007695010652312269,
	0.00079702723368932707, 0.00077720691151977374, 0.00076884517441047151, 0.00075824204249678106,
	0.00076796163054100174, 0.00076415871093307394, 0.00075417295339513704, 0.00072518091006218421,
	0.0010889833358176074, 0.00082255061787916842, 0.00084081357990525201, 0.00083160622867756748,
	0.00086342840619692599, 0.00083725644979892985, 0.00084392312542442768, 0.00083311707229899402,
	0.00087120467876158545, 0.00083650853012684349, 0.00082959377788219811, 0.00081884936958036812,
	0.00083648174817522189, 0.00081923321424437891, 0.00081915587214679121, 0.00080450251796200935,
	0.00083983829366343014, 0.00080471707424336703, 0.0007763710576746644, 0.00077036436703384293,
	0.00076678544945099722, 0.00074999581118135521, 0.00074598175252448288, 0.00073322898003464062,
	0.00075696562834536084, 0.00072663073950169482, 0.00070560873367759311, 0.00069611963590784595,
	0.00071848403668977147, 0.00069027810384398442, 0.0007048543201224485, 0.00069484695534681581,
	0.00046220756394818856, 0.00047978747359714617, 0.00047790235353742779, 0.0004603388181912131,
	0.00047631909794662694, 0.00047346790880698191, 0.00044177699956034151, 0.00042322226725862312,
	0.00041668395081801351, 0.00040296048024260865, 0.00039242212085234508, 0.0003776340646910294,
	0.00035847103141794845, 0.00034558928071893094, 0.00033024102787119781, 0.00031359011845104008,
	0.00022029909306607346, 0.00020365991223543706, 0.00018945616703506022, 0.0001755993227793901,
	0.00015504150087457025, 0.00013958273602965096, 0.00012758026001453415, 0.00011442962791842263,
	0.00010046414299606692, 7.2401245775730036e-05, 4.1385394286969981e-05, 3.3650473168878968e-05,
	6.0705934990615078e-05, 2.863194126942293e-05, 4.9015422174339471e-05, 3.8923918535848382e-05,
	-0.00035694437742743516, -0.00031756831577569781, -0.00030715229711855203, -0.00032628151028987046,
	-0.00031430504636165472, -0.00031395166195010836, -0.00034712659627736143, -0.00036365366952949009,
	-0.00039241150991093087, -0.00040171700464814987, -0.00041396744512220109, -0.00042619161630425738,
	-0.0004435708991984645, -0.00045641425241053977, -0.00046569710687199118, -0.00047849782174066123,
	-0.00056757554749776074, -0.00058010935885241012, -0.00059266490445016549, -0.00060271013449462703,
	-0.00062391059084661586, -0.00063802730166592065, -0.00064319435306318799, -0.00065201328051589481,
	-0.00065316124594534371, -0.00067353430188395983, -0.00069823685822276128, -0.00070289005677241019,
	-0.00068251642297617197, -0.00070329481806752185, -0.0006938677409898124, -0.00070150557907802712,
	-0.00092652489338111645, -0.00089085386819236483, -0.00088648941255841144, -0.00089872134352933367,
	-0.00089165019244032931, -0.0008962245439306639, -0.00090934108079512854, -0.00092064219862390557,
	-0.00093021476492247753, -0.00093669596251164198, -0.00094368962267888615, -0.00095143587293933793,
	-0.00096001926961603273, -0.00096582038696483099, -0.0009757683126489702, -0.00098438330896802166,
	-0.0010251116441973857, -0.0010302736332177991, -0.0010367889695989726, -0.0010430171050530518,
	-0.0010525214341700955, -0.001059828884402952, -0.0010644345028898545, -0.0010699940545427654,
	-0.0010752873328596715, -0.0010820418486185124, -0.0010964271224075302, -0.0010987887599673415,
	-0.0010991645301831098, -0.0011026252547706714, -0.0011137950291438352, -0.0011185049299587803,
	-0.0013014432842312848, -0.001253048851329296, -0.0012425213227898906, -0.0012523086131656026,
	-0.0012381491125538705, -0.0012368049230572912, -0.0012505165201180089, -0.0012591546279695776,
	-0.0012670597938642895, -0.0012689027290468669, -0.001272382098112882, -0.0012769743719143417,
	-0.0012855877682529137, -0.001288059677464231, -0.0012948246467321517, -0.001300372954196451,
	-0.0013591509900107402, -0.0013600476134590464, -0.0013618000078688482, -0.001366110119406707,
	-0.0013740872487924131, -0.0013780295147110145, -0.0013812792087280403, -0.0013842574265170175,
	-0.0013961254569103913, -0.0014043405184040708, -0.0014169756358656624, -0.0014168454091516255,
	-0.0014096044599895335, -0.0014194319502461793, -0.0014125633094122737, -0.0014127162203476187,
	-0.0016763473510315063, -0.0015976452201503452, -0.00157944725370014, -0.0015900900653128963,
	-0.0015717436857198641, -0.0015647425582197977, -0.0015832532321439735, -0.0015914905261471691,
	-0.001607515611576448, -0.0016062643393232575, -0.0016088974065835461, -0.001612055830168395,
	-0.0016226793351425972, -0.0016260129870294966, -0.0016268780910146143, -0.0016300666810426965,
	-0.0017243429508432965, -0.0017185635573335454, -0.0017169711134207804, -0.0017209745077609467,
	-0.0017312612716313392, -0.0017330551437279896, -0.0017357082609925094, -0.0017366817338269119,
	-0.0017590704253070228, -0.0017712302123927012, -0.0017836050475220895, -0.0017815056236009188,
	-0.0017657684216586934, -0.001787178961061219, -0.0017501131107743005, -0.0017374181122864461,
	-0.0020965230151177984, -0.001978094165724786, -0.0019582409603889589, -0.0019703442210260188,
	-0.0019622977379992763, -0.0019520471061645758, -0.0019738689922320822, -0.0019810089468870595,
	-0.0020207496118565408, -0.0020155207023240455, -0.0020214729073542242, -0.0020237918092366274,
	-0.0020383871884850804, -0.0020473256197803772, -0.0020369885680929013, -0.0020349989536825905,
	-0.0021692256755401853, -0.0021517524074404627, -0.0021518645028551641, -0.0021570063316544339,
	-0.0021772777342060922, -0.0021775159847231035, -0.0021827239097527429, -0.0021821604365129151,
	-0.0022156930707864127, -0.0022335623625652557, -0.0022470747944178106, -0.0022466924504380139,
	-0.0022217155423575963, -0.0022661580350686709, -0.0021974852811369773, -0.0021719845282051529,
	-0.0025393066589745284, -0.002363425894696554, -0.0023605801982539225, -0.0023696281143378273,
	-0.002394290609778364, -0.0023890971572532336, -0.0023995418833204804, -0.0024004239015065387,
	-0.0024701694310035214, -0.002453269472857194, -0.0024664067159478305, -0.0024670299911526768,
	-0.0024893177360551791, -0.0024989232036483778, -0.0024852349584535641, -0.0024705932388723113,
	-0.0026206879545485344, -0.0025598882032960499, -0.0025695121436229798, -0.0025733786796132124,
	-0.0026095749950056381, -0.0026050882519189876, -0.0026173043920075241, -0.0026130024670139797,
	-0.0026892340557245313, -0.0026795442162976715, -0.0026970678004264205, -0.0027017887602882196,
	-0.0027259320574079854, -0.0027608546487864105, -0.002722040957150475, -0.002680379527978922,
	-0.0025598087417160681, -0.0028506726557589439, -0.0029156752299240047, -0.0029065568539879232,
	-0.0029898470051863938, -0.0030016612308043943, -0.0030347630804690362, -0.0030306747926854179,
	-0.0031903261232536467, -0.0032144535258089922, -0.0032583921722067213, -0.0032893667430157784,
	-0.0033351940406174695, -0.0033713781044513742, -0.0031187225917870482, -0.0021113759433716377,
	-0.0022151006523993058, -0.002078183533180344, -0.002539718135855339, -0.0026008582945975739,
	-0.0026616497776396552, -0.0027171764402797527, -0.0027261071308330334, -0.0027670608749227935,
	-0.0030685940048295157, -0.0031100717919275048, -0.0031547482150733916, -0.0031975972136959767,
	-0.0032292274346793944, -0.0032825514085175439, -0.0032284852491713235, -0.003232433626578355,
	-0.0041873160927300788, -0.0039907612999672002, -0.0039767234708556849, -0.0040088989968973116,
	-0.0040050018263122151, -0.0040058761412484689, -0.0040580595847162755, -0.0040859539742990631,
	-0.0041497849172706259, -0.0041578918088247974, -0.0041830739380459472, -0.0042019601200200402,
	-0.0042108399648170189, -0.0042384982535120224, -0.004236158462492378, -0.0042345560670376354,
	-0.0044411998274393304, -0.0044386953755347737, -0.0044683486959439045, -0.0044758775893442458,
	-0.0045041639045915816, -0.0045185836330624831, -0.0045176284656211598, -0.0045161155888617122,
	-0.0045049049148765475, -0.0045481716284050738, -0.0045794314854260155, -0.0045707245163388015,
	-0.0045195560379797002, -0.0045460035258961459, -0.0044853792854698494, -0.0044563158976891329,
	-0.0051619902674308544, -0.004956571848667316, -0.0049422786631612287, -0.0049540893536636037,
	-0.0049592874090532519, -0.0049197837157217341, -0.0049681333716957432, -0.0049660714625056734,
	-0.0050327897256335326, -0.0050088344127536405, -0.0050053973248924775, -0.0049950180765378606,
	-0.0050265985191829451, -0.0050162739264726598, -0.0050087301020291138, -0.0049962735644670407,
	-0.0051945681833927629, -0.0051890886933878945, -0.0051947756335095777, -0.0051961371810327105,
	-0.0052183751771279624, -0.0052268710078232517, -0.0052190673391901143, -0.0052195545598225602,
	-0.0052003642784237275, -0.0052298196241914651, -0.0052548783628999359, -0.0052477065534381733,
	-0.0051783361910872272, -0.0052061046918012235, -0.0051644005813925161, -0.0051418076427346806,
	-0.004805772850797258, -0.0049002163147426527, -0.004813226941080149, -0.0048047223348240738,
	-0.0047876044704782909, -0.0048001305742051215, -0.0047946262730648795, -0.0048039123145712801,
	-0.0039987304221398914, -0.0040023919533932664, -0.0040324869590468628, -0.0039570283302127283,
	-0.0045554975716538071, -0.0046233995139931591, -0.0044958216280191893, -0.0044601772160981351,
	-0.0052305541063975523, -0.0052888294155826465, -0.0053243313184533521, -0.0053019660112227918,
	-0.0053886577299308075, -0.0054171049543901336, -0.0053484115059611393, -0.0053248127583296525,
	-0.0050931795743153711, -0.0051691706662470088, -0.0052107590715995715, -0.0051821594089461586,
	-0.0049796452921022742, -0.0050500942857700567, -0.0049248016119391143, -0.0047407696117000245,
	-0.004637782267707692, -0.0043561722399864259, -0.0043740793011733279, -0.0044657520098129577,
	-0.0046310969958647669, -0.0046593592961296296, -0.0046536456231901233, -0.0046641553539652795,
	-0.0050548778088638068, -0.0051103941705490539, -0.0051708025603052522, -0.0051799657629337543,
	-0.0051283767575600776, -0.005245897323959187, -0.0050907548386126709, -0.0050824817853206659,
	-0.0055519541907795488, -0.0055819357798147749, -0.0056347216220304927, -0.0056316234883561763,
	-0.0057042031862346515, -0.00573703258212282, -0.0057164987213220077, -0.0057175823964111848,
	-0.0056011918774637598, -0.0056871896122298281, -0.0057711534921410868, -0.0057702581641047145,
	-0.0056109436332776466, -0.0057123988260102425, -0.0056037262159813308, -0.0056121115703688671,
	-0.0091289520029748227, -0.0070875811342270877, -0.0072031267124342, -0.0073512690380689513,
	-0.008986041938107911, -0.0087006370935602834, -0.0087530710846977691, -0.0087130300459552987,
	-0.0082989248224206065, -0.0082638230846045872, -0.0082804530945650764, -0.0082515395530832498,
	-0.0081168902082081815, -0.0081264817941570817, -0.0080854053425653254, -0.0080932178894946132,
	-0.008679343251684974, -0.0086896111720549951, -0.0086461510193567986, -0.0086433098591012572,
	-0.0086054787909236596, -0.0085698032008161267, -0.0085825176907164541, -0.0085527568655746743,
	-0.0085649200223740837, -0.0087002281374796916, -0.0086942077504124221, -0.0085183117763318154,
	-0.0081105581425887138, -0.0078137233454988238, -0.0069137039251088682, -0.0047921040025104356,
	-0.0040766930883704318, -0.0052779898669200369, -0.0058163409840274894, -0.006066875403902933,
	-0.0060736809384758211, -0.0061322284433164079, -0.0061805595969255745, -0.0062011434158615415,
	-0.0063569422144297621, -0.0063758205388589565, -0.0064044430211838846, -0.0063977149593238969,
	-0.0063421265412646624, -0.0063515496223164672, -0.0063214615791684168, -0.0063065801834558581,
	-0.0065634645036546724, -0.0066884284483189607, -0.0066715572934871346, -0.006644889239447868,
	-0.0065188429517892381, -0.0065001631580965911, -0.0064735898574104231, -0.006452026362666609,
	-0.0060025813249047271, -0.0059422966959234869, -0.005815993486724483, -0.005948069325776884,
	-0.0072424941221914058, -0.0076971568262497996, -0.0064278085132337785, -0.0065515160966180706,
	-0.0095978476789655761, -0.0096486679386614659, -0.0095764592114342198, -0.009706729224840626,
	-0.0095974153887157208, -0.0095920156921004227, -0.0098000542424566857, -0.0099085197017027716,
	-0.0098896618397582032, -0.0099140561238647441, -0.0099613260697904386, -0.010031259007087573,
	-0.010188479400687823, -0.010208989550257312, -0.010339255779406789, -0.010424781262592652,
	-0.011085432787722654, -0.011166446737896735, -0.011079495438369351, -0.01120426603264966,
	-0.011202986047930968, -0.011227856768615735, -0.011383202505840333, -0.011473718919500185,
	-0.011957330027714264, -0.012036441270180755, -0.012071341826417241, -0.01214107204041414,
	-0.01230519616287863, -0.012477738762687188, -0.01221854902616897, -0.012276285134080295,
	-0.012211753337872017, -0.01207770846780447, -0.012083488270470828, -0.012152137857667535,
	-0.012064280024410243, -0.012049555121947457, -0.012188873452655383, -0.012252053313686794,
	-0.012140027653393094, -0.012137652870270623, -0.012141892403144332, -0.01218998377823133,
	-0.012343882165677196, -0.012332991400999371, -0.012436003098235943, -0.01247836889660554,
	-0.013370235786172111, -0.013244131150120023, -0.013219084493220219, -0.013241210842449818,
	-0.013959146876412674, -0.01400153290794973, -0.01394591868034257, -0.013742230091466327,
	-0.013054986092651589, -0.013095752676014968, -0.013146147031399597, -0.013181441540298653,
	-0.013198285746027704, -0.013161836287508324, -0.01329521672806519, -0.013336165527769584,
	-0.013442398722455607, -0.013430536695196279, -0.013401454579806698, -0.013437345472665398,
	-0.013383611970306665, -0.013368310084590204, -0.013446979646050681, -0.013476939745164439,
	-0.013516734898601952, -0.013525495414017567, -0.013537043432967865, -0.013555586035977365,
	-0.013599974765945421, -0.01361335125086331, -0.013628334153075256, -0.013646098496438412,
	-0.013934647928125479, -0.013957477870203832, -0.013964072683542361, -0.013978229650118438,
	-0.014010272900518483, -0.01402634883915049, -0.014031701177217252, -0.014039888178432464,
	-0.014083456497807345, -0.014118808401625523, -0.014166603431116993, -0.014162748806904307,
	-0.014073426205553389, -0.014118460422222791, -0.014046082773316055, -0.014045528861435492,
	-0.014840411154825444, -0.014822433780736074, -0.014776902485841077, -0.014796735401136513,
	-0.014731601023843327, -0.014701935149620527, -0.014763197991655782, -0.014776376404354953,
	-0.014794135731414807, -0.014787904717556413, -0.014784132946092123, -0.014786811055429087,
	-0.014815334070736328, -0.014810269755151116, -0.014810843911024574, -0.014812400391637027,
	-0.015084200995420167, -0.015096339086448246, -0.015081590294802936, -0.015078724022111164,
	-0.015087557836846009, -0.015082603019150067, -0.015071485491154399, -0.015060706283290152,
	-0.015103256002281476, -0.015122660131424211, -0.015151227701094675, -0.015123640246681107,
	-0.015006302950786454, -0.015037413188970472, -0.014919963800422773, -0.014890140070433525,
	-0.015605687825955323, -0.01582760228151546, -0.015771322620385612, -0.015759261221475803,
	-0.015720064546881702, -0.015671542831040546, -0.015669289210836101, -0.015631797715544071,
	-0.015868372715109304, -0.015822088605491155, -0.015779560273880402, -0.015718145295578825,
	-0.015658754588678644, -0.015555030862625094, -0.015319166896684668, -0.014868685321393059,
	-0.015276569144264521, -0.015707562216004729, -0.015866242430301852, -0.015876617549008331,
	-0.015926623601752708, -0.015927494531347005, -0.015874912123005205, -0.015839753974189241,
	-0.015751672837143769, -0.015850803404655871, -0.015868544939037065, -0.015841818605036351,
	-0.015636102613471155, -0.01574619834909876, -0.015540522426448636, -0.015434393320747414,
	-0.016058288499299342, -0.01601951617544458, -0.015997137112376617, -0.015991624725698796,
	-0.015961458364546804, -0.015941339580039977, -0.015951465732270104, -0.015946088791118269,
	-0.015939390839462927, -0.015926802069206759, -0.015915210298061703, -0.015905224859733592,
	-0.015901386459837963, -0.015887211361059236, -0.015876685088542342, -0.015865659108746984,
	-0.015920944886636861, -0.01590930966008898, -0.015892279825578646, -0.015876673530093074,
	-0.015862110488884407, -0.015845548917533002, -0.015826545683850699, -0.015808420706284233,
	-0.015798633033231643, -0.015782935855388962, -0.015771723983707957, -0.015747765668871715,
	-0.01570320570708213, -0.015685056142611689, -0.015643078691558766, -0.015618551358397726,
	-0.01597876144508981, -0.015848121990569373, -0.015802659912236353, -0.015780467343885895,
	-0.015722098796508571, -0.015677691477016292, -0.015678141693652878, -0.015655371077106947,
	-0.015630069756656786, -0.015598480724853874, -0.015566918105102646, -0.015538265713299415,
	-0.015517443658070068, -0.015484658828847633, -0.015456142896040571, -0.015428417878117195,
	-0.01550626983363341, -0.015471935557923658, -0.015436251139141176, -0.01540310638884918,
	-0.015373744119436318, -0.015341451757185699, -0.015303624518464183, -0.015268465229988405,
	-0.015245795351220828, -0.015213776140223097, -0.015191650917738796, -0.015149472811669966,
	-0.015081686370510456, -0.015042823873390739, -0.014981231574190361, -0.014936342578870153,
	-0.014858371772684204, -0.015250550667614915, -0.015165375888859056, -0.015132789891669872,
	-0.015049715180839772, -0.01499791738048235, -0.014986106471936638, -0.014948945504983695,
	-0.014912061392170937, -0.014877678538140733, -0.014833446515805647, -0.014792657313177311,
	-0.014761042040497423, -0.014718488102312521, -0.014674900819299777, -0.014634458539447233,
	-0.014688955193335502, -0.014670196379735174, -0.01462343371456582, -0.014580696552638403,
	-0.014541251145041735, -0.014499921089929261, -0.014452673870731248, -0.014408401828553574,
	-0.014370747056342647, -0.014339805544697999, -0.014306500845020368, -0.014257533536748928,
	-0.014166420795109609, -0.014138548484457112, -0.014055642399415216, -0.014012866597133434,
	-0.014165515996582863, -0.014252737472032961, -0.014181909747224499, -0.014140129611508734,
	-0.01405886823709716, -0.013995412802453439, -0.013975159702314398, -0.013930615041256467,
	-0.013885117944979493, -0.013837359662923165, -0.013784859992149307, -0.01373574835955539,
	-0.013695237446297788, -0.013644184923723318, -0.013593296704936263, -0.013545283150226248,
	-0.013586773802959718, -0.013557004489400011, -0.013500689489556499, -0.013449367537747357,
	-0.013400597590745264, -0.013350157952542343, -0.013294352089386887, -0.01324121433011584,
	-0.01319520599881375, -0.013156606681689787, -0.013114764292245619, -0.01305643629427706,
	-0.012956861212948279, -0.012920605680297004, -0.012828695623551342, -0.012777037369018644,
	-0.012994735175973124, -0.013027536365774065, -0.01294097656976053, -0.012892576647977605,
	-0.012795385058707982, -0.01272007026340579, -0.012694736709743479, -0.012642585037094685,
	-0.012588874695462998, -0.012530376470368889, -0.012468104451393109, -0.0124097637860085,
	-0.012361624675648178, -0.012300968647661606, -0.01224072442007674, -0.012183715245692863,
	-0.012236716618210941, -0.012194777053477615, -0.012127928182442411, -0.012067079346253314,
	-0.012010186505815432, -0.011950141075744214, -0.011883836041926357, -0.011820403862781229,
	-0.011761916857772062, -0.011719582117953447, -0.01167128621375654, -0.011601218347450541,
	-0.01148091513912166, -0.011440861746120114, -0.01133022170102993, -0.011267414789102256,
	-0.01159184200435856, -0.011568903346087445, -0.01146588683446772, -0.011408730047764895,
	-0.011293502738472872, -0.011203350084002415, -0.011172687922404735, -0.011110992495080657,
	-0.011048193940356967, -0.010976146053455212, -0.010902562563781599, -0.010833163556835695,
	-0.010776097226597494, -0.010703613851347382, -0.010632821295537618, -0.010564656571484303,
	-0.010628449534454283, -0.010571145876345523, -0.010493942098041819, -0.010421246891927471,
	-0.010355950254916589, -0.01028494073461924, -0.010206049602089968, -0.010130376157717221,
	-0.010058938746814679, -0.010006356595044483, -0.0099512191084519617, -0.0098679356177401936,
	-0.009729317422783797, -0.0096798748655262702, -0.0095538704580220551, -0.009477109395006806,
	-0.0097983704289231321, -0.0097631322698077932, -0.0096550415340894546, -0.0095848257117266602,
	-0.0094693709701333534, -0.0093716765288301418, -0.0093227009029802875, -0.0092483664835055629,
	-0.0091793152916081512, -0.0090966060465057872, -0.0090145367781818975, -0.00893347624840783,
	-0.008859858013559414, -0.0087770134842370274, -0.0086949080024100577, -0.0086152121789917994,
	-0.0086151017954503133, -0.0085572119847124352, -0.0084727575347121799, -0.0083896033984586053,
	-0.00831015425235891, -0.008231128022731354, -0.008141196428042459, -0.0080577059787084494,
	-0.0079505484998265707, -0.0078896252533235643, -0.0078181327744817532, -0.0077291459830858018,
	-0.0075932257506441132, -0.0075237208655160289, -0.0074143803232226942, -0.0073362189053900358,
	-0.0073217024830972751, -0.0073823008203123533, -0.0072775572165352312, -0.0072029714536989723,
	-0.0070830455399723069, -0.0069993571483473, -0.0069307849772634678, -0.0068562768576468655,
	-0.0067016359135129008, -0.0066646207357603238, -0.0065736655297843252, -0.0065009524746601384,
	-0.0063960958884730279, -0.0063137921178347597, -0.0062612474528133087, -0.0062144260041011729,
	-0.0059658201340719481, -0.0060260579081499732, -0.0059343570321445868, -0.0058791149780822605,
	-0.0057402521136244739, -0.0056959153734259787, -0.0056247421269006882, -0.0055846895010048516,
	-0.0053402353840733482, -0.0053720240738556356, -0.0052699124315247368, -0.0052163821962198549,
	-0.0050328768920717814, -0.0050074757551026488, -0.0048626568941092414, -0.0048282290119464619,
	-0.003978959641421303, -0.0042259079695895312, -0.0042841801186721011, -0.0042297095942343465,
	-0.0042285486882831262, -0.0042666978816829366, -0.0041645200994014824, -0.0041216473463656367,
	-0.0039456131293063466, -0.0039652728340017675, -0.0038978684562258241, -0.0038691280814192341,
	-0.0037796354616267927, -0.0037436539982456875, -0.0036740079733330586, -0.0036091020470608087,
	-0.0030444395764050256, -0.0031446728166428378, -0.0031228801006021093, -0.0030932663438027475,
	-0.0030147973620414633, -0.0030071659204391702, -0.0029818355902878138, -0.0029731752546771533,
	-0.0028410959315792999, -0.0027585053093395592, -0.0026303374731703999, -0.0025806776668038062,
	-0.002668115721120759, -0.002517020936171838, -0.0026098228843788812, -0.0025692179601788695,
	8.3546534287758055e-05, -0.0012961663654251494, -0.0012574378443760477, -0.0011775597065626538,
	-0.0011931797998587272, -0.0011614892639638392, -0.0010313966955044407, -0.00095025514612616889,
	-0.00085606686971596488, -0.00080338975657529368, -0.00073419763909140232, -0.00066987751708942286,
	-0.00054067003273890039, -0.00055211222147931037, -0.00043939263582134651, -0.00037582341397226289,
	0.00035453568740333088, 0.0003379642797441925, 0.00013577977323360089, 0.00018181456878360542,
	0.00027771908063370094, 0.00030501352059509083, 0.00029537716050655476, 0.00030374631029352007,
	0.00035009834021327326, 0.00039531871477674249, 0.00046802515669185958, 0.0004652722838046957,
	0.00031354417269130106, 0.00042812006555521424, 0.00027626571052732072, 0.00027115321777429312,
	-0.0024616790187683467, -0.0032438468308332905, -0.0030913446685572315, -0.0030547685770725692,
	-0.002998208141119737, -0.0029193124874647212, -0.0027246605750444373, -0.0021041132191350199,
	-0.0024226370025888897, -0.0023839070409314021, -0.0022789557243493644, -0.0021624765637016097,
	-0.0020030595639370843, -0.0018966347863666512, -0.0016437589567678476, -0.0012083173508539132,
	-0.0010275451053907831, -0.00099197521571500963, -0.001032664414757919, -0.0010009468936599999,
	-0.0009107559698398076, -0.00082183527822980577, -0.00071452634634830425, -0.00062103930267306336,
	-0.00047961219534810941, -0.00038012366926292097, -0.0002472118114396466, -0.00017657588848176106,
	-9.6111579341519895e-05, -9.4536477432855475e-05, -0.00026656959251010318, 0.00011775579078480004,
	0.0014340863493073515, 0.0013091152524549118, 0.0013766979684859773, 0.0012286991763845888,
	0.0012224653708336557, 0.0011578723584864594, 0.0012322931940056715, 0.0012329759764969416,
	0.0013863058357449702, 0.0013796331793454639, 0.0013832307500105361, 0.0013773191489190738,
	0.0014024830937708426, 0.0014382679406070643, 0.0013331157216240181, 0.0013305463378974027,
	0.0017378386879974873, 0.0017854285457199477, 0.0017756536384780758, 0.0017752728937047405,
	0.0017734551231174825, 0.0017712238691510022, 0.0017695175477882128, 0.0017629488454265448,
	0.001784534376487521, 0.0018683725298212581, 0.0019193613029288045, 0.0018988908346343012,
	0.0017028396492226375, 0.0018508122132411635, 0.0015583713346183671, 0.0015407373828141087,
	0.0016114969202205996, 0.0019630448077121543, 0.0019530161332002008, 0.0019383519210223838,
	0.001899437132150975, 0.0019190254654263242, 0.001883706990553548, 0.0018768297773857571,
	0.0017562860520865596, 0.001763532671636942, 0.0017641964490635743, 0.0017612284553417379,
	0.0017456875391701472, 0.0017432472882422043, 0.0017458387207516361, 0.001744301573243753,
	0.00155203584054396, 0.0015588145203937714, 0.001573384868437482, 0.001566944880188982,
	0.0015669550392873734, 0.0015715983814163542, 0.0015627654002090005, 0.0015613014836518601,
	0.0015207309292088473, 0.0015155260248333451, 0.0015057556984358353, 0.0015092984272304928,
	0.0015245012576063862, 0.0015156837317075143, 0.0015303934390755866, 0.0015302635128159408,
	0.0010840616545446133, 0.0011061936272565884, 0.0011497988396571145, 0.0011384080450272955,
	0.0011950557624708378, 0.0012229700071830164, 0.0011810568697013472, 0.0011743544944387433,
	0.0011681143704259441, 0.0011792602133545564, 0.0011849976206930372, 0.0011855574572725151,
	0.0011669946177455806, 0.0011735867136488927, 0.0011705281435555575, 0.0011701462234432239,
	0.001011835878297136, 0.0010101528186050206, 0.0010191123334557768, 0.0010202083707804704,
	0.0010145526097297942, 0.0010157317900515034, 0.0010208571058367667, 0.0010248146578127741,
	0.0010062698934535813, 0.00099208025710117911, 0.00097277846727508222, 0.00098302468930527506,
	0.001037443383217128, 0.00101694480026714, 0.0010630362508075343, 0.0010687977706617343,
	0.00047593031474004734, 0.00049661193000105782, 0.00054770535056667497, 0.000534604402791458,
	0.00060490779290062191, 0.00063761837743156078, 0.00058819157733677654, 0.00057907301129598503,
	0.00056692888330150504, 0.00057697647495475238, 0.0005829046574713717, 0.00058331875506051443,
	0.0005632577016868183, 0.00056826089091475648, 0.00056727857751459989, 0.00056519094520148406,
	0.00034210853094660215, 0.0003367219783562047, 0.00034398859413323457, 0.0003433562109851739,
	0.00033044199719347791, 0.00032887449394586413, 0.00033304458448260625, 0.00033537277891325157,
	0.00031194594461005147, 0.00028541230249894578, 0.00025437849326107151, 0.00026494754407882905,
	0.00034483025641356824, 0.00030682692963391516, 0.00037852820930349635, 0.0003839932987197332,
	-0.00033250853175251108, -0.00029223450928064765, -0.0002453641855169515, -0.00026209473077235771,
	-0.00020905002682589419, -0.0001811164299876877, -0.00023224544901268926, -0.00024373529499451801,
	-0.00028135816526240191, -0.00027695444988481749, -0.0002781825284630939, -0.00028105769382370815,
	-0.00030050600715665523, -0.00030580359452066913, -0.00029995569502162123, -0.00030420646400645707,
	-0.00051527976562546407, -0.00052280779476098903, -0.00052240575354357735, -0.00052647617794724646,
	-0.00054714275864453589, -0.00055401496352493814, -0.00055154288448724714, -0.00055259639007018875,
	-0.00056655513380403106, -0.00059755364574899401, -0.0006271449492791394, -0.00062193000947908356,
	-0.00055031297171182641, -0.00059414308836228764, -0.00052224412341455597, -0.00051855038222152429,
	-0.001002019749485668, -0.00095730821897579369, -0.00094014295618600194, -0.00095157686754169699,
	-0.00093469467055994147, -0.00092860999003678286, -0.00094987456711132694, -0.00095874278121635187,
	-0.0009859717025392312, -0.00098884919292691357, -0.00099389270649694961, -0.00099840201767938553,
	-0.0010057155101324553, -0.0010130687184748577, -0.001011243179658385, -0.0010163169057370181,
	-0.0011035326548465732, -0.0011082735661012719, -0.0011140391490224795, -0.001118162268158116,
	-0.0011304099182694138, -0.0011374105603583335, -0.0011379065884043256, -0.0011413038656332875,
	-0.0011393601108910501, -0.0011518476052094404, -0.0011676320896976454, -0.0011679568121153593,
	-0.0011468119884847844, -0.001158559113387197, -0.001148926143294081, -0.001151266185345601,
	-0.0012835096557679468, -0.0012398397756510154, -0.0012488046805573809, -0.0012513849759063945,
	-0.0012569810563015297, -0.001267838065480402, -0.0012602344249558952, -0.0012641166999925965,
	-0.0012661180977048317, -0.0012726605522326961, -0.0012764676749101569, -0.0012800394341954447,
	-0.0012746422130142519, -0.0012768360522327279, -0.0012832937910978986, -0.0012882964121335701,
	-0.001257400241332759, -0.0012609939570641731, -0.0012690049247087217, -0.001269716374565926,
	-0.0012680894792174674, -0.0012727975962223558, -0.0012721525399384292, -0.0012751367366326972,
	-0.0012500889765933083, -0.0012443619617042545, -0.0012464661114056606, -0.0012476232360441421,
	-0.0012618567662873901, -0.0012352600507397049, -0.0012865220759220857, -0.0012963392773421472,
	-0.0011574812260581955, -0.0011554789667559545, -0.0011771995147465779, -0.0011687579573412276,
	-0.0011695124742858148, -0.0011856348156572378, -0.0011633070591280401, -0.0011619777368698479,
	-0.001118215113620046, -0.0011301360711876937, -0.0011254079534943175, -0.0011261501360402707,
	-0.0011043322841072685, -0.0010942284817117257, -0.0011145314376987622, -0.0011251510549735789,
	-0.00097299138396021495, -0.0010006460360929249, -0.0010041875109930913, -0.0009980153325641148,
	-0.00096973992491739165, -0.00097441750922235113, -0.00096449777599267011, -0.00096773956163290317,
	-0.0008948324448438971, -0.00087969757471108073, -0.00086701647795149551, -0.00086475688914171549,
	-0.00088384241578606001, -0.00081146781918606063, -0.00092767146962531404, -0.00097719700736859962,
	-0.00056431195485207963, -0.0006602500597863828, -0.00066919567761220466, -0.00064907985556195049,
	-0.00061129592112067071, -0.00062405780987186501, -0.0005887254993000385, -0.00058356029955830297,
	-0.00045492261671729829, -0.0004853233685512529, -0.00045571941845321266, -0.00044751516927783188,
	-0.000384378641692004, -0.00036120093070864557, -0.00037558767193373796, -0.00039767904431133153,
	-7.7946427643899935e-05, -0.00017871856628749923, -0.00014849291825401605, -0.00012803444157323231,
	-3.8809915604026239e-05, -3.4408274051838277e-05, 6.0276663919902794e-06, 1.1733578596508237e-05,
	0.00020566773611950171, 0.00019006453296581131, 0.00024884084672307903, 0.00027577051125312084,
	0.00034506881856100476, 0.0004328648112744925, 0.00036757465517344231, 0.00029619633933341774,
	2.2610242751360556e-06, 0.00039302971035349741, 0.00062622249436124677, 0.00059690739450909665,
	0.00092647271946139564, 0.0010174464232617906, 0.0010032789524434167, 0.00097588929983483228,
	0.0012933449407390187, 0.0013677810261235458, 0.0014840326022219107, 0.0015378133091436528,
	0.0015392824897204201, 0.0016516831495690758, 0.0012233315185817945, -0.00053742022949624085,
	-0.00028906560006399743, -0.001015657458890473, -0.00034017042986026689, -0.00034398739634606754,
	-0.00035277242175482871, -0.00032823256661825283, -0.00034753659483265808, -0.00032418456961053163,
	-0.00011171955329043385, -8.8754869062430023e-05, -7.2730829104397391e-05, -2.3805923711649716e-06,
	9.147956899375344e-06, 8.4720197290985288e-06, -3.4840338221905855e-06, -1.3556734073486947e-05,
	-0.00030409294175736323, -0.00034745361758930691, -0.00027361009394247048, -0.00026914881364719419,
	-0.00017675874481439674, -0.0001098663235426299, -0.0001395535621767091, -0.00010848820680178137,
	-0.0001589744693033675, -0.00012518252340785414, -8.6814854535295782e-05, -4.5027625616300106e-05,
	-8.1136944182042409e-05, -2.019536895249956e-05, -7.0580625587324211e-06, 2.2122421600617176e-05,
	-0.0001561467867512845, -0.0001395308763004346, -7.6877418079050129e-05, -5.4195413263732438e-05,
	-5.5920337826341499e-05, -1.3242074600158002e-05, 1.1761278154761067e-07, 2.3757266359870378e-05,
	-4.5232153002948578e-05, 1.9809384658967089e-05, 2.8227016053182891e-05, 4.4723301403802902e-05,
	8.8939654801432379e-05, 7.8851828830108124e-05, 9.2785980921347011e-05, 0.00010422129863110944,
	-0.00012415437753267211, -0.00019763172169872011, -0.00012555256921774346, -0.00012419050311051802,
	5.3443251880001431e-05, 4.2689184506358573e-05, 4.1030833754162937e-05, 2.0256360096914205e-05,
	7.8158910882564247e-05, 6.8452092727136368e-05, 6.4163174314752169e-05, 4.8830090658149023e-05,
	7.1869580041519792e-05, 6.6833824734906089e-05, 7.00083436817425e-05, 6.6306479722773372e-05,
	-5.5789548754229683e-05, -4.8835642317778693e-05, -2.1443248041415472e-05, -8.5454625107799466e-06,
	4.921096094906768e-06, 2.3594954201240938e-05, 3.794774448965472e-05, 5.7983991763025156e-05,
	2.1182342421352996e-05, 3.163013974022971e-05, 3.4003766841139294e-05, 5.3136878751868432e-05,
	9.0357746561439475e-05, 9.4643853227581343e-05, 0.00015061088931671594, 0.00016223026497497176,
	-0.0005024039954783134, -6.0632447199325278e-05, -0.00049944711584847294, -0.00049718095642980347,
	-0.00058574430656212488, -0.00060348823357975494, -0.00055262880971915446, -0.00053404842215417714,
	0.00025136075464885779, 0.00020153386756409418, 0.00025588841110757416, 0.00012788205771009553,
	0.00016245664452237468, 0.0001693488687348822, 0.00017001022786982428, 0.00021352334334486355,
	0.00011051259171110102, 0.00016130673296732415, 0.00016305533848155377, 0.00016293644086079852,
	0.00016833862627062485, 0.00016606607073515382, 0.0001676660368252319, 0.00016504747151713012,
	0.00019743204390063708, 0.00017942074725445689, 0.00017782564635546611, 0.00017552524850312766,
	0.00019970070753635717, 0.00017741809875176524, 0.00020135920291894672, 0.00035693709883894992,
	-0.00016510061570825297, 0.0002264802259411271, 6.8106002544414293e-05, 4.3914032965748343e-05,
	-8.1335177331702063e-05, -7.8533835116500314e-05, 6.2709812105528059e-06, 3.0533816405913861e-05,
	-0.00041336703978897321, -0.00047463779952819986, -0.00050556765891433179, -0.00045718580785861663,
	-0.00022810915544229325, -0.00032076243492925303, -5.9098056432511566e-05, -3.4460181796042879e-05,
	-0.00075665121534185568, -0.00078805890823950575, -0.00077511667896145765, -0.00074506296659680488,
	-0.00078636696408162761, -0.00078447248031147021, -0.00072086580473397748, -0.00068489115579550733,
	-0.00055238221845802155, -0.0006827270387428562, -0.00071769958267342126, -0.00067083712803490958,
	-0.00028670407232248582, -0.0005102534102698371, -6.2590335560182243e-05, -1.273755557034724e-05,
	0.00031459305093877718, -0.0026387683077267934, 0.00029309299095351115, 0.00031308019486846867,
	0.00035846693881033269, 0.00047002912853802469, 5.4187379100001142e-05, 0.00020379756478122588,
	-0.00073171371422936851, -0.00079387704592710231, -0.00079135552671580681, -0.00076390091555251973,
	-0.00068325485080364867, -0.00067861002059762935, -0.00059860955122776965, -0.00051458456963707883,
	-6.6569775291622384e-05, -0.00017195574477967329, -0.00016216673096847758, -0.00012750583199472052,
	-0.00011910911150709262, -0.00011688301300977484, -4.5298134556139436e-05, -1.4442491191802554e-05,
	8.310359645154326e-05, 0.00012115591894027288, 0.00015563536772960645, 0.00021071100535424082,
	0.00024101653070024914, 0.00037132726378266256, 0.00066598957556174938, 0.00071726036650617117,
	0.0030178851432932324, 0.0042251869171128775, 0.0039009209811681025, 0.0034654178611913371,
	0.0031809227636823284, 0.0034416857892792521, 0.0028642537328496588, 0.0027718898356396513,
	0.0020432257400354223, 0.002164410165863381, 0.0020676025241717559, 0.0020472421622672906,
	0.0017944694323967524, 0.0016903743404932366, 0.0018509392116021189, 0.0019268411088128848,
	-9.3802279957143345e-05, 0.00014912807307277057, 0.00023804665854662224, 0.00018476454800535257,
	2.8906014763472268e-05, 3.9195055948489094e-05, 9.558596403739409e-06, -2.447712442446969e-06,
	-0.0010912939262158264, -0.00092169398210182056, -0.0017764792828654859, -0.0016271716040422298,
	-0.0024927880384575003, -0.0027139038021525121, -8.3267492649235033e-05, 9.8666190255352644e-05,
	-0.0007169691925095024, -0.00066032831436727663, -0.0007000900535459666, -0.00068954991252848238,
	-0.00060001097560498731, -0.00055462095033342873, -0.0006490291289053807, -0.00066070720043074239,
	-0.00055223884310086325, -0.00052633762467702895, -0.00051622816364232547, -0.00052329400921243246,
	-0.00059428864906507545, -0.00055741105813031898, -0.00062695721933794693, -0.0006403582564715192,
	-0.00095441676922102144, -0.00072666525922756545, -0.00079837817425801598, -0.00082951848551796926,
	-0.00089950777446093724, -0.00087698061947906274, -0.00093044942210728703, -0.00093831292018575155,
	-0.0013232244732635295, -0.0013080014009376178, -0.0013905810626047086, -0.0014041388973068513,
	-0.0015107434245998754, -0.0019544897961369279, -0.0028916657000072139, -0.0012386748910055451,
	-0.0029679426582829354, -0.0032620520904914126, -0.0031669825371780425, -0.0031575027211758568,
	-0.0031038223898483125, -0.0030931180499423707, -0.0031147903224601542, -0.0031224559786553374,
	-0.0030745259082012202, -0.0030820186564697494, -0.0030823129886144145, -0.0030891240070518144,
	-0.00308596302231475, -0.003088607309968561, -0.0030932360928797539, -0.003100326276070685,
	-0.0031520043602569505, -0.0032740618258067004, -0.0031975059043075054, -0.0031954306995214954,
	-0.00244723678354259, -0.0020400592741147785, -0.0026789238146054115, -0.0037251375647870434,
	-0.0031480415836800521, -0.0031176975323496357, -0.0030851096576472027, -0.0031087094477028517,
	-0.0032911784853998293, -0.003300072272897271, -0.0032812935891017468, -0.0033113413728369694,
	-0.0030292333498858053, -0.0030543292360623829, -0.0030523804817191879, -0.0030518679714468919,
	-0.0030510149064883934, -0.0030551802585201478, -0.0030512804046798634, -0.0030520058079539295,
	-0.0030156178022572176, -0.0030156881483186324, -0.0030130747251633509, -0.0030144993560916201,
	-0.0030171094967388935, -0.0030108504040354069, -0.0030241301238161443, -0.0030260578211949284,
	-0.0029505625026123093, -0.0029592996091376157, -0.0029507688143362749, -0.0029494726050232072,
	-0.0029347648546930107, -0.00293371145992136, -0.0029323575033999333, -0.0029354062364055568,
	-0.0029177989657378539, -0.0029023909132667503, -0.002896002001970213, -0.0028971534500212533,
	-0.0029279015990568771, -0.0028965669584492351, -0.0029494878714849877, -0.0029565491015297821,
	-0.0028100594281556556, -0.0028576088893647079, -0.0028472196988199622, -0.0028445680228119576,
	-0.0028145854374078305, -0.002808401463240079, -0.0028061516420282884, -0.002812131291894472,
	-0.0027656757019090344, -0.0027667419862365183, -0.0027539227699056915, -0.0027516846322028386,
	-0.00274157872479014, -0.0027279029303428131, -0.0027525152644409293, -0.0027570608511013378,
	-0.0026698661423657775, -0.0026826675850526505, -0.002669550247709439, -0.0026672305455618813,
	-0.002639682857192857, -0.0026338541762478689, -0.0026342111206922791, -0.0026354989667307497,
	-0.0025939762690946797, -0.0025788925490697061, -0.0025617441592294004, -0.0025627269918449122,
	-0.0026022419982191024, -0.0025626332856797051, -0.0026201168775109749, -0.0026280359064109388,
	-0.0023417724864217776, -0.0024918098902585186, -0.0024566811224906952, -0.0024447101875713423,
	-0.0024132408722196286, -0.0024071431955716605, -0.0023970903415002523, -0.0023925705692282211,
	-0.0010637343501574885, -0.0011306867642389047, -0.00087367618308781389, -0.00087814262287848896,
	-0.00085614363246796208, -0.0004975421185875545, -0.00097057917665550018, -0.00077727183600686351,
	0.00087327765460933136, 0.00082228444654377294, 0.00077520282135557352, 0.00076940152919268551,
	0.00077875089376543843, 0.00076535637686608394, 0.00077015981987862579, 0.00076541033514067314,
	0.00083519046744433777, 0.00078362920093552342, 0.00078289711725660911, 0.00077942695707421258,
	0.00084147910463598923, 0.00079582321269260222, 0.00085649370792122842, 0.00088072976625980443,
	0.00080903252355091736, 0.00075899400970478518, 0.00075683089345349413, 0.00075460474621517675,
	0.00077281550058296098, 0.00077031376794393014, 0.00076560532132421554, 0.00075757664810243656,
	0.00078816951875991341, 0.00077936431958383645, 0.00078192201177182733, 0.00077737248471244197,
	0.00078315978688828431, 0.00078614808100075121, 0.00077569816342900352, 0.00076106536788295457,
	0.000802191891795134, 0.00078608711086643678, 0.00078147782497609312, 0.00077963236445943739,
	0.00078754541680840285, 0.00078380820358827145, 0.00078386885509705746, 0.00077705560190625728,
	0.00080078448713182188, 0.00079934824868050887, 0.00079743641847782379, 0.00079424228082521596,
	0.00079984347058810565, 0.00081011527273630276, 0.00079067031655423578, 0.00076853196058953601,
	0.00082419150690642162, 0.00079636178675838228, 0.00077775674592389741, 0.00078179501484631217,
	0.00078440188160474515, 0.00078091514499958198, 0.00077956365996253161, 0.00077720270960271421,
	0.00079647756743679717, 0.00079232982016180526, 0.00079245360382661158, 0.00078883206502353002,
	0.00079144610844370975, 0.00079396670202805635, 0.00078436593514784661, 0.00077586875578818939,
	0.00081125943105972984, 0.000804720598642501, 0.00079778090401751601, 0.00079679355060163748,
	0.00080048187260328848, 0.00079782693624537936, 0.0007963892079569005, 0.00079191576841453656,
	0.00080497009888076741, 0.00080569511777673838, 0.00080573983199424171, 0.00080178838524503867,
	0.0007994542208636761, 0.00080679539750606248, 0.00078869749472134504, 0.00077451112666755641,
	0.0007715757214710843, 0.00079346397752432429, 0.0007800139909605832, 0.00078085918870770632,
	0.00078228672774421795, 0.00078104726525006843, 0.00077627765702992983, 0.00077393109963396856,
	0.00078247404740708294, 0.00078095548216989045, 0.00077966900039838649, 0.00077649467196261974,
	0.00077391091502784337, 0.00077403777663224754, 0.00076721926686724919, 0.00076274871901551569,
	0.00076293256264468661, 0.00076111421305198449, 0.00075768330036093956, 0.00075544278879190847,
	0.00075491168151608427, 0.00075254354032739301, 0.00075005885384354281, 0.00074696788491563054,
	0.00074615496521117689, 0.00074389435584024458, 0.00074149452607733684, 0.0007386040558812081,
	0.0007388250571481042, 0.00073815726346501437, 0.00073344545954493379, 0.00072835828084285995,
	0.00064354724325554836, 0.00064957883056912936, 0.00065557089272399072, 0.00065041898816433057,
	0.00066239349815042309, 0.00066599272295927731, 0.00065316426616157848, 0.00064834446305240049,
	0.00064734174853141172, 0.0006470894543981105, 0.00064580364306689013, 0.00064270057607086588,
	0.00063492305811543588, 0.00063378479819978348, 0.00062929007823637063, 0.00062576080886721057,
	0.00057888568360496789, 0.0005757469006166388, 0.00057582423595625026, 0.00057242138486190551,
	0.00056746825967766935, 0.00056460671124934441, 0.00056242319327042846, 0.00056008955565124393,
	0.00055005883621539269, 0.00054219419164886385, 0.00053262966567560683, 0.00053244096138378271,
	0.00054606956008826564, 0.00053536271297589951, 0.00054816121933045736, 0.00054746798214985791,
	0.00033360701403410919, 0.00033650844455940758, 0.00035968768246293493, 0.00034873943246531978,
	0.00037307962782117304, 0.00038202056770580875, 0.00036069468131045488, 0.00035278146739057317,
	0.00034245711481718777, 0.00034308176799099287, 0.00034177822984737805, 0.00033886109412097076,
	0.00032819159418310688, 0.00032615829776244697, 0.00032413813177699689, 0.00032067615284150415,
	0.00023269637883027789, 0.00022743883314841687, 0.00022899457581073579, 0.00022578960759419832,
	0.00021679883014341953, 0.00021328642000323288, 0.00021319559689324773, 0.00021210143336834893,
	0.00020096258752892997, 0.00018897344618254701, 0.00017271008321465911, 0.00017585510447582297,
	0.00020424779462079062, 0.00018769342226815472, 0.00021264697254899052, 0.00021428731364290287,
	-5.9566248629632092e-05, -5.678955752152742e-05, -3.7364633647436703e-05, -4.5178514033254174e-05,
	-2.4874282098910583e-05, -1.6787928213673201e-05, -3.3386778814135011e-05, -3.8662877990322613e-05,
	-5.7336675911112834e-05, -5.7905591004850048e-05, -5.9371286489913123e-05, -6.0049532823563774e-05,
	-6.2010674723368469e-05, -6.4656167016196445e-05, -6.0890879067709103e-05, -6.2511595543529339e-05,
	-0.00014677752569493624, -0.00015230138670162919, -0.00015359202840887378, -0.00015299948691322403,
	-0.00016109059152574212, -0.0001642802421829215, -0.00015865943444171951, -0.00015732550008397688,
	-0.00014788769410373667, -0.00015874558237329375, -0.00017084639578032407, -0.00016611783463402638,
	-0.00013021208538923897, -0.00014081666097485454, -0.00012037486299384687, -0.00012017278902295651,
	-0.00023665875821946819, -0.00023441690789499458, -0.00023464556168894035, -0.00022919500449193145,
	-0.0002298503909794067, -0.00022952765524475034, -0.00021984743580984693, -0.00021379456435342896,
	-0.00022988609104550238, -0.00022560265922494976, -0.00022033046227955125, -0.00021441386858902787,
	-0.00020564520748718991, -0.00020561842348338315, -0.0001868538878096784, -0.00017652138431831652,
	-0.00021935959609087083, -0.00020360535787167968, -0.00019934410553408343, -0.00018751837683383564,
	-0.00019447550175630333, -0.00018296445632171225, -0.00017199666191522651, -0.00015565824419835414,
	-0.0001768387442597598, -0.00016123906274023511, -0.00015965577240284468, -0.000146124744789216,
	-0.00012442508113460408, -0.00013386310664867003, -8.6032225723058916e-05, -6.6169619850838513e-05,
	-7.6144379532634292e-05, -9.6724289311029863e-05, -0.00011922431821007042, -8.150879213222828e-05,
	-0.00011373691184106809, -0.00010783307579971778, -6.337260025320672e-05, -4.0538804670899368e-05,
	-8.7494517703262773e-05, -8.5383022816214554e-05, -8.1855813235189661e-05, -6.4294784587238702e-05,
	-3.722010129146181e-05, -6.1747742850941313e-05, -5.2476381996776489e-06, 7.2150092335113541e-06,
	-9.9289350396862449e-05, -6.6107621902429574e-05, -5.8344605029503558e-05, -6.7441688817298536e-05,
	-5.3855731802495438e-05, -5.1292213142676166e-05, -7.8690367784281864e-05, -9.3126465747714459e-05,
	-9.5955148847412327e-05, -7.4154024462559333e-05, -7.5046669071999016e-05, -8.5766526600976141e-05,
	-9.6007994231580207e-05, -8.0327419291364776e-05, -9.8788029034564172e-05, -0.0001000196614665541,
	5.8520989218450044e-06, -1.761338483553749e-05, -9.2586957029128676e-06, -1.3586623884152243e-05,
	-1.8684658364886262e-05, -1.685574682350674e-05, -2.1095932940041515e-05, -2.7772773331671294e-05,
	-2.3416375872074565e-05, -1.0998318355188215e-05, -2.1891478675394882e-05, -2.9471647631524102e-05,
	-4.0726887192339433e-05, -3.9347707958196442e-05, -4.9216303980239571e-05, -5.0789636122104018e-05,
	-1.1297419379899711e-05, 9.2546974599899747e-06, 3.4105747917915622e-06, 8.0217164969516469e-06,
	-2.6253176078507723e-06, 7.2912592558206765e-07, -1.4994532978726732e-06, -3.8656782300982983e-06,
	-1.7599567894829252e-06, 6.8464610743715515e-06, 1.6632678163399829e-05, 9.8339868144742826e-06,
	-3.6036376002227473e-05, -2.391349502939204e-05, -6.0715759200189e-05, -5.9215436068732848e-05,
	7.4591618936043386e-05, -0.0002380337412364606, 0.00010178509174106234, 9.804457994387504e-05,
	1.6664915839870475e-05, 1.9442708918590868e-05, 1.2330141062846902e-05, 1.1048611526627806e-05,
	-2.5229192002683377e-06, 2.2305282169954801e-06, -5.863716522355464e-06, -8.9669650911116563e-06,
	-2.0693222422890208e-05, -2.5750790796028648e-05, -2.7822143529899218e-05, -4.066534107515925e-05,
	8.1708311501502975e-05, 6.039332749484729e-05, 7.7206456388578438e-05, 7.5943376756455015e-05,
	8.1267693325219237e-05, 7.8076284953621479e-05, 8.2284802157876866e-05, 8.1760545680772408e-05,
	9.0244635520887541e-05, 8.615255234827344e-05, 8.9581579495656209e-05, 8.9955908885259672e-05,
	7.5551289744701724e-05, 5.0176462766894468e-05, 8.0882194979250264e-05, 9.29008628832602e-05,
	-4.0265419881475016e-05, 6.3211087549419837e-05, 7.127618770635503e-05, 5.7480417504043204e-05,
	1.3678430598917134e-05, 1.8786669597552409e-05, 7.3917280360720007e-06, 4.6309776136883212e-06,
	-8.4861991817646417e-06, -2.565755175662579e-06, -4.4445639014933874e-06, -5.3419422645579538e-06,
	-1.223349389136296e-05, -1.8069574261814702e-05, 3.4797454497483285e-06, -4.9283500009314381e-06,
	7.2394838634429152e-05, 9.5348929481021944e-05, 9.059807281804672e-05, 8.4975102759333708e-05,
	6.0945859151374949e-05, 5.1270961296900827e-05, 4.0376930300688854e-05, 3.25918130543441e-05,
	2.2013526807177197e-05, 1.7726647409190615e-05, 1.1495440373719943e-05, 7.9559056576745e-06,
	-2.418797990095487e-05, -2.8229665557594148e-05, 5.402382293932854e-05, -5.9128326812127101e-07,
	-3.0187558626677538e-06, -5.5943668788232894e-06, -1.0029542881933093e-05, -2.0431632661207654e-06,
	2.9168312788997755e-06, 4.6936852609919179e-06, 1.6087966874538626e-06, 7.329657435406778e-07,
	-3.1198672016401544e-06, -1.0120574712658203e-06, -2.9695947182337701e-06, -3.8148645265331674e-06,
	-4.4092021712982712e-06, -4.3089586889681686e-06, -3.5041132589388171e-06, -8.9807949601689416e-06,
	-2.0101923092294168e-05, -2.8219880463919738e-05, -2.7394825841963827e-05, -2.8290056385799752e-05,
	-2.5537606768408992e-05, -2.567314460083657e-05, -2.5050717052504811e-05, -2.7390612697661646e-05,
	-2.6287345041125785e-05, -3.0828417574708085e-05, -3.3021068568761849e-05, -3.3563951149834001e-05,
	-2.439869630545574e-05, -3.1308300876521186e-05, -2.1104386617424978e-05, -1.8763466486404768e-05,
	-3.8887709415385e-05, -6.3144948505972038e-05, -6.3107126532812037e-05, -6.4393464150480764e-05,
	-6.2635717202338465e-05, -6.2824067033400742e-05, -6.5143353967710418e-05, -6.7383291584708122e-05,
	-6.2963625763701327e-05, -6.4096233521630314e-05, -6.2218983457401636e-05, -6.3618299283202197e-05,
	-6.8656980955243468e-05, -6.7551864049090365e-05, -7.3002691842841564e-05, -7.65192108724616e-05,
	-6.7954034350318617e-05, -6.1880486100108337e-05, -7.3071829936226763e-05, -7.3081509581186913e-05,
	-8.1833405359975432e-05, -8.4200977068115706e-05, -8.662539353770033e-05, -8.8708078296176446e-05,
	-8.834498150188303e-05, -8.874162064736954e-05, -9.7412913856373856e-05, -9.9885421571953192e-05,
	-9.9002052172659244e-05, -0.000104901412469792, -0.00010230897905139643, -0.00010253429235454516,
	-0.00011818272768854144, -0.00010471866108481925, -0.00011232185467552664, -0.00011447907146702349,
	-0.0001223734730702047, -0.00012536460554108401, -0.00012792595271022582, -0.00013075653521372167,
	-0.00013750928936671669, -0.00013812124960717285, -0.00014289193604892636, -0.00014611225227939909,
	-0.00015074154774921968, -0.00015326223741992488, -0.00015758635660558659, -0.00016084833991625774,
	-0.00016629788245920362, -0.00016206215324839573, -0.00016755985347591943, -0.00017101870980304311,
	-0.00017715314629588127, -0.00017946728204692281, -0.00018472886213165846, -0.00018848990339831743,
	-0.00019564771220530137, -0.00019544219474334413, -0.0002000119603103, -0.00020414697555380524,
	-0.00021245453706903196, -0.00021456244147355206, -0.0002210018459583224, -0.00022444566273108221,
	-0.00022369262278327466, -0.00020318526123838594, -0.00021220953305484786, -0.00021505582338630889,
	-0.00022743006153363863, -0.0002319514418082961, -0.00023413634206118498, -0.00023731936265358272,
	-0.00024732595342004149, -0.0002474425089470688, -0.00025376296258644506, -0.00025772773753314113,
	-0.00026352854209374171, -0.00026643329269955063, -0.00027195039517590195, -0.00027568659821968568,
	-0.00027390296189887508, -0.00026751376770156973, -0.00027416101715750028, -0.00027798961761630507,
	-0.00028484219336260842, -0.00028722023499842445, -0.00029316310543792156, -0.00029724567537399991,
	-0.00030419891932793376, -0.00030204830558044638, -0.00030563942309027068, -0.00031036855652019792,
	-0.00032374745362405563, -0.00032337668705949122, -0.00033485088208283715, -0.00033867003551943067,
	-0.00031336753725309769, -0.00029259641748973023, -0.00030184913903423164, -0.00030439717106043533,
	-0.00031589635859749683, -0.00032059956007287336, -0.0003217870266979535, -0.00032475213396125678,
	-0.00033159521452529527, -0.00033141138836055502, -0.00033691594509253269, -0.00034052584357901014,
	-0.00034592491518574674, -0.00034780403976657112, -0.00035393855445420177, -0.00035731034194810867,
	-0.00035598618394215375, -0.00035039890882398002, -0.00035585449165168628, -0.0003592537191115286,
	-0.00036471145763672364, -0.00036652046580253257, -0.00037192923167230049, -0.00037544292728934435,
	-0.00038268379831210515, -0.00038122573832268718, -0.00038476547480209279, -0.00038855270865839826,
	-0.0003991510353716057, -0.0003990123104483231, -0.0004087426821791758, -0.00041133874283145181,
	-0.00042260969293664947, -0.00040249238890854611, -0.0004073240335797485, -0.00041041346375299427,
	-0.00041634685168966156, -0.00041808341005115137, -0.00042269596931941581, -0.00042578074079783031,
	-0.00043292780031185146, -0.00043240329310719746, -0.00043675381699001677, -0.00043978165135833487,
	-0.00044547225677432715, -0.00044725052817915065, -0.00045172864681258676, -0.00045447253346391197,
	-0.00046571059465678642, -0.0004625308910412086, -0.0004665790718615922, -0.00046948237924817861,
	-0.00047471418199858726, -0.00047644860607865929, -0.00048050545640639948, -0.00048320987193665554,
	-0.00048907284375985355, -0.00049101944157779731, -0.00049513762560935901, -0.00049775859544970295,
	-0.00050022410922117829, -0.00050444553173281345, -0.00050476032235449069, -0.00050500684232024687,
	-0.00054530386978830954, -0.00052858636554188945, -0.00053099169047126629, -0.00053410197292430247,
	-0.00053728344011129902, -0.00053758010382856723, -0.00054322372030592462, -0.0005460890664098978,
	-0.00055286075929681852, -0.00055247902839368316, -0.00055589917482533075, -0.00055837176109460075,
	-0.00056348340928178873, -0.00056544780260639276, -0.00056813920700552335, -0.00057010455708989395,
	-0.00058321724928141921, -0.00058495744996315332, -0.00058780796646971717, -0.00059034625103793464,
	-0.00059506409236462264, -0.0005966625943783796, -0.00059968442990350566, -0.00060158407356561742,
	-0.00060299417353419432, -0.00061154909190240124, -0.00061539562109200175, -0.00061716318209879362,
	-0.00060995224181509722, -0.00062327175358905976, -0.00060863768855091223, -0.00059932363981881698,
	-0.00068179066570893355, -0.00065795029396943172, -0.00065753312736654859, -0.00066165184496883435,
	-0.00066325243678990646, -0.00066195581522939591, -0.00066894793861274171, -0.00067185601648676169,
	-0.00068211003733179465, -0.00068080462444789142, -0.00068402462760653942, -0.00068598935708826187,
	-0.00069223456914967077, -0.0006949080455678693, -0.00069490521547665822, -0.00069585314965418398,
	-0.00072847162330002039, -0.00072221326930510033, -0.00072378755921185861, -0.00072641386061613096,
	-0.00073310322584353737, -0.00073405793591279213, -0.0007370366935014964, -0.00073806355196211063,
	-0.00075225204624786504, -0.00075493308620321552, -0.00075926937971578239, -0.00076066546167543334,
	-0.00075922975177920978, -0.00076988824277149869, -0.00075559391099218939, -0.00075319963506869953,
	-0.00083921409927140817, -0.00081120077516619164, -0.00080975150885846485, -0.00081433025853712567,
	-0.00081947167250526903, -0.00081778832484481008, -0.00082462734339069823, -0.00082637267005020577,
	-0.00084672303377285112, -0.00084361533572954804, -0.0008481999601974064, -0.00084978287893769985,
	-0.00085897532818733603, -0.00086401238947159478, -0.00086013480607199802, -0.00085629437275437561,
	-0.00090907593877552397, -0.00089690277645526801, -0.00090040706825587642, -0.00090343742630177024,
	-0.00091608835110663987, -0.00091760498531147274, -0.00092207452689611728, -0.00092205262505211665,
	-0.00095017543599435535, -0.00095093816660542468, -0.00095906537484779283, -0.00096248650133978644,
	-0.000969652480767071, -0.00098575055868110125, -0.00097091966149798843, -0.00095856910475095437,
	-0.00068865639717883848, -0.00098955745437681098, -0.0010313448545614459, -0.0010230729895673888,
	-0.0010765878892567973, -0.0010940017918568913, -0.0010911419829831525, -0.0010836233550429706,
	-0.0011235784583991527, -0.0011659551365182943, -0.00118589462474804, -0.0011968499725309161,
	-0.0011637646842554777, -0.0012132947554632709, -0.0010720601749950108, -0.00073627087439615273,
	4.6213288636518169e-05, 0.00010957260244575832, 5.7009131444508031e-05, 5.7752399137592991e-05,
	5.9329521872993341e-05, 5.6206015310224683e-05, 5.8490007169405339e-05, 5.5274257125700986e-05,
	2.3462789110803295e-05, 1.9057389970668978e-05, 1.5925564306878702e-05, 5.6020056725497766e-07,
	-2.101319860834915e-06, -1.9631400167711322e-06, 7.7547482233798665e-07, 2.9477304268453353e-06,
	7.5043786262995852e-05, 8.1710815906326444e-05, 6.5765432284418878e-05, 6.5000712353438492e-05,
	4.4208289206468934e-05, 2.8414025537795592e-05, 3.579794398665057e-05, 2.8461885142780917e-05,
	4.0515115029979974e-05, 3.2458814542021336e-05, 2.307657231519795e-05, 1.2340370228774748e-05,
	2.1496637526932937e-05, 5.6253146193034698e-06, 1.9588860874068562e-06, -6.3699473432019658e-06,
	4.153360848873015e-05, 3.7468763469062799e-05, 2.1550606623932607e-05, 1.537399096641239e-05,
	1.5848622939489886e-05, 3.8883430883981412e-06, -3.1804552809312296e-08, -7.0947529468770514e-06,
	1.2547765945636759e-05, -5.8516950992473069e-06, -8.4563834639876649e-06, -1.3475693488782322e-05,
	-2.7028595172865855e-05, -2.3799696383717876e-05, -2.7369134759557054e-05, -3.0938195502839802e-05,
	3.8161709409131674e-05, 5.7338891101205593e-05, 3.7451485091964919e-05, 3.7048018347222824e-05,
	-1.8351797309048314e-05, -1.4090517430766018e-05, -1.3718603179956338e-05, -6.5732366597078571e-06,
	-2.7395477894587812e-05, -2.3364694198131774e-05, -2.1525591227983547e-05, -1.5930964544024903e-05,
	-2.4105076947518382e-05, -2.206017626199735e-05, -2.2959504509618118e-05, -2.1481033175673417e-05,
	1.7428237768268893e-05, 1.5297333600663898e-05, 6.8152721743625444e-06, 2.7256149639465728e-06,
	-1.5899684605062197e-06, -7.7172014802882951e-06, -1.2445910054024008e-05, -1.9247771873431115e-05,
	-6.7692328143738305e-06, -1.018360227717057e-05, -1.1028115936372639e-05, -1.7342155964794777e-05,
	-2.9419291909623796e-05, -3.1101263436450808e-05, -5.1489773171172324e-05, -5.6143332718202796e-05,
	0.00019315262839876879, 1.8104489825483513e-05, 0.00018540874074596855, 0.00018657904016651132,
	0.00021527701631443355, 0.00022154391405092782, 0.00020962981604261889, 0.0002065477488228972,
	-7.1596333678684818e-05, -5.0850625354253742e-05, -6.7817237317094881e-05, -3.0560444575168236e-05,
	-4.828578381649425e-05, -5.2574080823960739e-05, -4.8736760734208546e-05, -6.3322922857503213e-05,
	-3.6740583937315349e-05, -6.1700985368955656e-05, -6.2472796463662391e-05, -6.1381089148633639e-05,
	-6.5472026929285014e-05, -6.4082659459279651e-05, -6.2850019997842083e-05, -6.0470374667000504e-05,
	-6.9733457543470198e-05, -6.4566254405172457e-05, -6.439865439324653e-05, -6.1846501914456859e-05,
	-6.4555231827539568e-05, -5.8618857021870639e-05, -6.0879690882574875e-05, -0.00011462448452274542,
	4.1505031680732754e-05, -6.8011418591376984e-05, -1.8261633087559102e-05, -1.1899104613692382e-05,
	2.1176220027993348e-05, 2.0420158734933202e-05, -1.7049094347156222e-06, -8.3285474419058793e-06,
	0.00010174254201249762, 0.00011522124110600627, 0.00012218182074214069, 0.0001119330236233744,
	5.9643673262155172e-05, 8.2474641469255775e-05, 1.6116141624899474e-05, 9.4576980044480043e-06,
	0.00017921789532395589, 0.00018591352340218849, 0.00018446594405664501, 0.0001783105718650508,
	0.00018773668512640627, 0.00018788123004665977, 0.00017471629152163653, 0.00016723617763454588,
	0.00013729587821498777, 0.00016526381711071204, 0.0001741247470714651, 0.00016419843506944938,
	7.6075884872745734e-05, 0.00012802950335112225, 1.7663082026752795e-05, 3.614670347751195e-06,
	-0.0011856437328566561, 0.00042082652005310649, -0.00013874481031672938, -0.00014921712502551825,
	-0.00062730208212727649, -0.00046297316450623051, -0.00078801771862673452, -0.00074168740074410174,
	-0.0011164921575897505, -0.0011132666238335151, -0.0011291147328766767, -0.001126753702125377,
	-0.0011530867057960225, -0.0012161617734156574, -0.0011269743500676771, -0.0010862511263043683,
	-0.0018312471126366672, -0.0018115462920575544, -0.0017695815023364499, -0.001781829558992402,
	-0.0018640263256971188, -0.0018656849404493419, -0.0018672969952679194, -0.0018391249773082412,
	-0.0020153193991441706, -0.0020974974884012182, -0.0022118076376314135, -0.0021331601367196701,
	-0.002003630779603513, -0.0021429020494308205, -0.001622647587716233, -0.00092646415156555308,
	-0.00011732236911688025, -0.00025157081803014135, -9.8303888249268447e-05, -7.3927121875362652e-05,
	-4.4867671966444872e-05, -5.0175784554544493e-05, -2.7977462099937139e-05, -1.9044985353605793e-05,
	2.4263570859835841e-05, 1.650116727097779e-05, 3.9861041153878736e-05, 4.2563290297393538e-05,
	4.2546174315927648e-05, 5.4273933101872442e-05, 4.565763652323855e-05, 3.4835493985528258e-05,
	9.4659776414247283e-05, 0.00017453227754799988, 0.00019144504542529939, 0.0001925532104251645,
	0.00020446096215955632, 0.00020986823647239076, 0.0002026037061497093, 0.00019492972160439862,
	-7.2128956094451465e-05, -7.002845494264598e-06, -0.00014156978975305635, -0.00014131808629247596,
	-0.00014496786603367641, -0.00015234647355382005, -0.00033266658228462516, -6.8152061587503727e-05,
	-0.00091421107555069705, -0.0009805252243809614, -0.00094921452216883149, -0.00097221518179138101,
	-0.00098044361997573774, -0.00099947149064189911, -0.00098156129470134247, -0.00099186752817459522,
	-0.0010229973182246037, -0.0010436381103401226, -0.0010480943347720168, -0.0010528113718600654,
	-0.0010359460705932288, -0.0010556980539727485, -0.0010370647439202985, -0.0010427451253504894,
	-0.00096551100734260553, -0.001083318547677225, -0.0010482678995174799, -0.0010478151414608657,
	-0.0010043850030407341, -0.0010172578805013063, -0.0010097443713600815, -0.0010172868875647852,
	-0.00089219146401803642, -0.0009117858155421577, -0.00087835713055745869, -0.00087975120416884807,
	-0.00084424008198193525, -0.00067650740775756482, -0.00029467177126231501, -0.0009600376158209646,
	-0.00026613737454484236, -0.00014315711634807826, -0.00018353819126364955, -0.00019143594451294016,
	-0.0002133297428240745, -0.00022459109787692077, -0.00021683845104114593, -0.00021703014787086014,
	-0.00023958596723737692, -0.00023941691629059429, -0.00023982820421741705, -0.00024002015154548452,
	-0.00024832696659738286, -0.00024575246279229745, -0.00025228928030281492, -0.00025662883218558526,
	-0.0002425589253691205, -0.00018343277127767237, -0.00021531109831630942, -0.00021622147905254443,
	-0.00054838500318647385, -0.00072979004194172984, -0.00044807635309778208, 1.6274398447338244e-05,
	-0.00028666190884449945, -0.00030428026840391718, -0.00031475988480429538, -0.00030719195575729504,
	-0.00023421679714107972, -0.00021950766162873774, -0.00023151264264138248, -0.00025054375679206846,
	-0.000287825594003491, -0.00028741998993888219, -0.00029344614704010768, -0.00029433131912605506,
	-0.00029456572547747323, -0.00029616616382010348, -0.0002960882159990102, -0.00029608846873093115,
	-0.0003067697158269282, -0.00031138311830900884, -0.00031174908336377877, -0.00031192036281811261,
	-0.00030828506518399437, -0.00031223970123797233, -0.00030606339875427626, -0.00030664106477040748,
	-0.00032562096643864324, -0.00032629727926165018, -0.000328335082800018, -0.00032896712615073103,
	-0.00033001052525182244, -0.00033239525966186062, -0.00032949003295551136, -0.00032795524419914935,
	-0.00033834989499696813, -0.00034004557210391532, -0.00033898966179229614, -0.00033751748136964593,
	-0.00033482528866903293, -0.00033773688270932734, -0.00032635329783774794, -0.00033716209644957956,
	-0.00032621017302201827, -0.00033777075681137321, -0.00034121858689723048, -0.0003404030232245832,
	-0.00035084854189410604, -0.00035544149626626128, -0.00035242733895472729, -0.00034871047523622723,
	-0.00035580913302655067, -0.00036192066982404042, -0.00036374576828931016, -0.00036395600716431414,
	-0.00035940096502386129, -0.00036637271025439957, -0.00034929277756526593, -0.00034668031941416057,
	-0.00035604619610373644, -0.00036783324525116429, -0.00036845057645235621, -0.00036717983571872337,
	-0.00036780676278992425, -0.00037209688471822358, -0.00036333334314806001, -0.00035990917287174302,
	-0.00036508788669813131, -0.00037300740161217501, -0.0003717570264356962, -0.00036704192388890356,
	-0.00034058478804654285, -0.00034675224101751587, -0.00032422637215363419, -0.00033326982372837872,
	-0.00026697277350427298, -0.00034051858930734451, -0.0003537826953795503, -0.00035280143139741977,
	-0.00034573846318451559, -0.00035152182377342711, -0.00033785335750487189, -0.00033114285433750057,
	-0.00093747754105567816, -0.00093892217374365967, -0.0010592406333228711, -0.00104604254205729,
	-0.00099828614735319836, -0.0012022313595662355, -0.00082515398972133713, -0.00092261222914347249,
	-0.0007383243196178148, -0.00069605980192532851, -0.00065090032673581673, -0.00064235324532769091,
	-0.00064928079981054908, -0.00063678028072847897, -0.00063671037858899758, -0.00063058761162732881,
	-0.00067729490863873754, -0.00064152619684343132, -0.0006410916350952122, -0.00063504589024120648,
	-0.00066739138663364018, -0.00063646214997303634, -0.00067022919686700257, -0.00068363760605880499,
	-0.00065257835881251476, -0.00062043603463686188, -0.00061559395082440597, -0.0006119260535893549,
	-0.00062158163042054179, -0.00061700045771886621, -0.00061235038978064852, -0.00060461766151501453,
	-0.00062407637243855211, -0.00061581886828844068, -0.0006154287476774073, -0.0006102882658162237,
	-0.00061262861871047602, -0.00061265292907067899, -0.00060359717595871124, -0.0005918214916578187,
	-0.00062093034081045994, -0.00060887543855692378, -0.00060388435136187022, -0.00060094591933580407,
	-0.00060453251386393986, -0.00060035305758067556, -0.00059874694354546565, -0.00059265736158552651,
	-0.00060690838707779589, -0.00060480661553379261, -0.00060232841106205219, -0.00059863153526656802,
	-0.00059918335504666382, -0.00060489325298634261, -0.00058966731320267071, -0.00057418109550274416,
	-0.0006172287044935149, -0.00060104381425298936, -0.00058728123577262434, -0.00058865049354037526,
	-0.00058757210390436533, -0.00058330526384510126, -0.00058232295670564659, -0.000579683381332857,
	-0.00059048697941105203, -0.00058640996714249877, -0.00058509490878936405, -0.00058160815667460857,
	-0.0005823479182033831, -0.00058245524721691876, -0.00057544503368558173, -0.00056915978592836933,
	-0.00059349356885689459, -0.00058851258198483046, -0.00058315691768268737, -0.00058131711973363363,
	-0.00058244887697988276, -0.00057965136719682669, -0.00057754132269553229, -0.00057371972402958931,
	-0.00058040423132016124, -0.00058010512222015081, -0.00057939417104466563, -0.00057580887254943995,
	-0.0005714151197994498, -0.0005751497477378977, -0.00056211730960006585, -0.00055284342149200646,
	-0.00056246580830069043, -0.00057523490531913453, -0.00056598516785839013, -0.00056536491689719766,
	-0.00056413537771694529, -0.00056142991417424749, -0.00055897311201699696, -0.00055654745786935756,
	-0.0005610771446589003, -0.00055878311274655632, -0.00055689826063112921, -0.00055399788027851032,
	-0.00055202067143664637, -0.00055088316967165146, -0.00054593843105594565, -0.00054237759782819117,
	-0.00054697650567635627, -0.00054489355783362301, -0.00054182674705471694, -0.00053948477339148628,
	-0.00053844316876867687, -0.00053602103151563192, -0.00053351946257876293, -0.00053071043695812462,
	-0.00052981266553386451, -0.00052813604384060531, -0.00052626527984957216, -0.00052347018101050156,
	-0.00052034242799265556, -0.00051991859844807242, -0.00051426848299472399, -0.00051039199651585422,
	-0.00047727337950712273, -0.00048022272083044566, -0.00048184817861246943, -0.00047811808401229168,
	-0.00048287690343954234, -0.00048305727367247092, -0.0004762256575733032, -0.00047262817018655186,
	-0.00047191989424176457, -0.00047053256813858795, -0.00046881775462066647, -0.00046610659328768275,
	-0.00046134701983550002, -0.0004597107013118718, -0.00045616477503535984, -0.00045325578726477638,
	-0.00043028108671000232, -0.00042772016442976302, -0.00042684134566957317, -0.00042396789137373082,
	-0.00042051505074199898, -0.00041800286094009737, -0.00041578530842825717, -0.00041353113329718245,
	-0.00040714654182969639, -0.00040225793242824247, -0.00039619235995532305, -0.00039514645374187575,
	-0.00040059704803644633, -0.00039428954117815056, -0.00039935431814980477, -0.00039809734643417858,
	-0.00026731805514600354, -0.00026931495292314083, -0.00028544800084700519, -0.0002771799121602016,
	-0.00029344980013362536, -0.00029875058695446927, -0.00028414503838934582, -0.00027811478891457032,
	-0.00027059077346704347, -0.00027052635001946387, -0.00026913601186585596, -0.0002666526556556412,
	-0.0002588940223127465, -0.00025702267084659386, -0.00025517517095374775, -0.00025232928264762094,
	-0.00018839901413401648, -0.0001842142286907777, -0.00018520856846965716, -0.00018249544421847078,
	-0.00017539527426451839, -0.00017248957403434391, -0.00017217364581915517, -0.00017111784414005,
	-0.00016225443938395573, -0.00015301068433838278, -0.00014016224907367452, -0.0001424737452434389,
	-0.00016372199136659312, -0.0001510327468072833, -0.00016946670794203272, -0.00017054315052427707,
	4.9993956733271763e-05, 4.7700805075363634e-05, 3.1303614448975182e-05, 3.7835855311487664e-05,
	2.0737889679536681e-05, 1.3947265283277166e-05, 2.7836029634034175e-05, 3.2220959285525824e-05,
	4.7636119675442634e-05, 4.8017752872003338e-05, 4.916097775943533e-05, 4.9696442095016316e-05,
	5.143801368127232e-05, 5.354415513675092e-05, 5.0466413450166404e-05, 5.1780835885100837e-05,
	0.00012202789570704268, 0.00012646086846438006, 0.00012728990692357397, 0.00012674194423617982,
	0.00013324034159297631, 0.00013567734261681365, 0.00013109571569543151, 0.00012990804709279364,
	0.00012273263104067378, 0.00013163118704760372, 0.0001415308662033707, 0.00013753478438213181,
	0.00010788546550646171, 0.00011676874623639958, 9.944742865451344e-05, 9.9139678869605293e-05,
	0.00020678186202773287, 0.00020481302744425757, 0.00020310587954921669, 0.00019929685934570642,
	0.00019748134723820268, 0.0001959570618857907, 0.00019029888523268467, 0.00018587471534727953,
	0.000198163590323256, 0.00019458880699154614, 0.00019039284916589795, 0.00018582567592802032,
	0.00017961831807172726, 0.0001793345744537298, 0.00016500600563210352, 0.00015701112137713884,
	0.00019507459761243482, 0.00018371279003869158, 0.00018020510368911362, 0.00017100346297175187,
	0.00017653586998347354, 0.00016777577683747618, 0.00015880067733329585, 0.00014566298638862704,
	0.00016183039690605795, 0.00015047725487674185, 0.00014999468912382503, 0.00013871073435450234,
	0.00011845848896493721, 0.00012702695160754721, 8.4559930583432932e-05, 6.6355163358689122e-05,
	8.7414948399925597e-05, 0.00010664031798102666, 0.00012701716994230981, 9.1328210461806217e-05,
	0.00012123719211679524, 0.00011535458184478349, 7.2591106058520036e-05, 4.8063811596374487e-05,
	9.7813481320667439e-05, 9.5820275223534176e-05, 9.2441476878406519e-05, 7.470574710365048e-05,
	4.5242712422817244e-05, 7.2369195266440385e-05, 6.9405570064679037e-06, -9.362396492775301e-06,
	0.00010717465648175882, 8.1221721631508293e-05, 7.2828773321074441e-05, 8.2693472166657609e-05,
	6.8291217355024157e-05, 6.5646921601568472e-05, 9.4455329869488349e-05, 0.00010804575833748733,
	9.9331283091809504e-05, 9.2025592232343475e-05, 9.3408177491364756e-05, 0.00010324971290841183,
	9.3591047880356004e-05, 9.7980403669524721e-05, 8.6897366177304344e-05, 6.2354764671268111e-05,
	-9.3434724294881962e-06, 2.653643079027735e-05, 1.52698192588002e-05, 2.1672414995599237e-05,
	3.0044623460063936e-05, 2.7732928443154953e-05, 3.3498298246334127e-05, 4.2551921492430795e-05,
	3.5962068444761407e-05, 1.8346290307454413e-05, 3.4639889417439659e-05, 4.4973550815236661e-05,
	5.7456389119233803e-05, 5.6891168502356411e-05, 6.3572376142707605e-05, 6.1378851300566479e-05,
	1.851550001502121e-05, -1.6300429735060735e-05, -6.1416933018807611e-06, -1.4891804327519363e-05,
	4.0123219388189448e-06, -1.2969984742102552e-06, -1.4705342147210423e-06, 2.2549314931262947e-06,
	7.158915398230456e-06, -3.6991955966105284e-06, -1.3332334383175505e-05, -7.2680978258975923e-06,
	5.3685777815186938e-05, 5.1689041900800706e-05, 7.5945242617259554e-05, 7.7706373229806589e-05,
	5.7968853522312531e-05, 9.5118578838413812e-05, -6.3513753312316104e-06, -5.8429116166211142e-06,
	5.2363702442586099e-05, 4.6344816127471737e-05, 5.3977030792545056e-05, 5.3140557197254552e-05,
	6.3386603230213047e-05, 5.6361873687829797e-05, 5.7118974654248291e-05, 5.4126479254296475e-05,
	4.7641280304548297e-05, 4.7042756036841206e-05, 3.9319963170627992e-05, 3.1976360490071991e-05,
	7.0302398459618984e-05, 5.3229514960942691e-05, 6.6564719058062599e-05, 6.6613093974429564e-05,
	7.3741169479089262e-05, 7.1563148647372886e-05, 7.4383041749669703e-05, 7.3638704988936886e-05,
	7.9155663397870448e-05, 7.8195709539309027e-05, 8.2198627052893552e-05, 8.1574412183924106e-05,
	6.4409031920085376e-05, 3.96934275755583e-05, 6.7482780543672504e-05, 7.5165242042519981e-05,
	2.3176481270544633e-08, 1.4353001400218987e-21, -3.5115040494450801e-24, -1.0251558532286661e-19,
	-1.3474339348098262e-05, -1.736304347591689e-05, -7.3807654845254411e-06, -3.6764552708910041e-06,
	1.4993531354058873e-06, 2.3290862754972297e-06, 4.0560013938107267e-06, 4.8733872610141684e-06,
	7.6926274847469442e-06, 1.5568201097545684e-05, -2.1144181656028699e-06, -3.0906661433382685e-07,
	-7.8657550580613385e-20, 3.4834325492366768e-22, 1.9355405402895491e-22, -2.143695365246505e-22,
	2.7391860488295412e-23, 3.8422503862545843e-23, -1.7443840015501191e-23, 1.7433336138922257e-25,
	6.7131690513219802e-14, 7.4562123542836917e-23, -1.7324371555334386e-22, 2.6960272252062652e-22,
	-9.4044186871352702e-23, 6.4473951395902559e-22, 2.3108625841173186e-05, -7.9091262265038926e-06,
	-4.0641576995262005e-06, -6.6808832065044379e-06, -2.0807718875034898e-05, -8.8206919484824562e-23,
	5.1233645520733915e-22, -1.1655606743607624e-22, 1.2625665680470798e-21, -1.4084313483943218e-21,
	-4.3894340597322844e-06, -3.310524616175308e-22, -5.2148360808213484e-06, -6.6429719433003064e-06,
	-7.6351750203004652e-06, -7.828382856851069e-06, -5.4917996216369356e-06, -1.3996746881668152e-05,
	-2.8340175081410212e-05, -3.7753028763287592e-05, -3.980104524303048e-05, -4.1092754171674464e-05,
	-4.001808092489614e-05, -4.095872948208474e-05, -4.0555560469652372e-05, -4.3223088680461509e-05,
	-4.2148698234135099e-05, -4.9957015829631662e-05, -5.4193679757388047e-05, -5.4730079490828985e-05,
	-4.0243706951881944e-05, -5.1785065010579236e-05, -3.3876207697666383e-05, -3.1868218774974625e-05,
	-3.460482865096412e-05, -7.6684447300156509e-05, -7.7074236048925023e-05, -7.7804759285626685e-05,
	-7.649895847684463e-05, -7.9470107230834384e-05, -7.9412235521902767e-05, -8.0473702822990981e-05,
	-7.5644223303315166e-05, -7.7983446292735815e-05, -7.9425522477409515e-05, -8.1160834634078758e-05,
	-8.2851666268161245e-05, -8.4376250935464431e-05, -8.6748476235005333e-05, -8.847738801169485e-05,
	-8.0635828031100246e-05, -7.8997280629929697e-05, -8.707489685571445e-05, -8.8217201477706276e-05,
	-9.2748782563423148e-05, -9.5072147963864984e-05, -9.6985938876285562e-05, -9.9070372736485135e-05,
	-9.9345891162448677e-05, -0.00010127898870803083, -0.00010391029415167502, -0.00010628033091130669,
	-0.00010943879932525595, -0.00011150682130145276, -0.00011443784366523479, -0.00011623358002925833,
	-0.00010859655041712598, -0.00010262310584755305, -0.00010676018505510629, -0.00010883092090622113,
	-0.00011419834713134385, -0.00011794779327918105, -0.00011820164589887539, -0.00011974981679650967,
	-0.0001252161403662339, -0.00012752337031124127, -0.00013033129503784092, -0.00013268866696138442,
	-0.00013577770117563325, -0.00013856374980124894, -0.00014119290855049471, -0.00014333420431061753,
	-0.00014533328470223017, -0.00014301524631941978, -0.00014622821504116037, -0.00014930105009467717,
	-0.00015303389878117197, -0.00015506388406211712, -0.00015926043217036304, -0.00016243765117752171,
	-0.00016958665259471909, -0.00016900640621511493, -0.0001712444031652037, -0.00017522310895674506,
	-0.00018477356831440473, -0.0001854798662611555, -0.00019313286884926437, -0.00019628498259403071,
	-0.00018612804647404283, -0.00016790028478529776, -0.00017592179764999163, -0.00017823733972032959,
	-0.00018851693436012113, -0.00019214600477602612, -0.00019424233118794362, -0.00019697263990173946,
	-0.00020478350269486294, -0.00020443318866146819, -0.00020973264139500413, -0.00021314245437706035,
	-0.00021862600263730485, -0.00022075949433519911, -0.00022594451564029059, -0.00022917186137743774,
	-0.00022802533108996249, -0.00022167311709545427, -0.0002272151506625195, -0.00023054521195813306,
	-0.0002361063685123354, -0.00023777205021548493, -0.00024332092422922242, -0.00024690357765279217,
	-0.00025419642727628173, -0.00025176613724494821, -0.00025430231511653815, -0.0002586073060277904,
	-0.00027151456293832284, -0.00027088287406754958, -0.00028132118635512633, -0.00028459869314450008,
	-0.00025194387622949323, -0.00023322081124650928, -0.00024255198872846962, -0.00024420189379455902,
	-0.00025590247646323987, -0.00026039626613134524, -0.00026032651094343103, -0.00026247748474371587,
	-0.00026813690039474084, -0.00026769227499920904, -0.00027254657926770908, -0.00027553134604928024,
	-0.00027987932271759838, -0.00028128918511643211, -0.00028667731216614964, -0.00028940382099602359,
	-0.00028186849569381283, -0.00027572673783756514, -0.0002805670946956192, -0.00028332783504525619,
	-0.00028747558756761509, -0.00028855453002576698, -0.00029353187098387387, -0.00029653404141544788,
	-0.00030286892562916801, -0.00029988208456593467, -0.0003015642726689215, -0.00030517393120765341,
	-0.00031799191203460902, -0.00031601716549873931, -0.00032736531308775514, -0.00032975976874465138,
	-0.00031208211114747749, -0.00029334292177855776, -0.00029958823380148392, -0.00030134035738829711,
	-0.00030909894708527875, -0.00031129747014617398, -0.00031336921150946194, -0.00031535942021307021,
	-0.00032079144612751043, -0.00031967879746492813, -0.00032350938777292362, -0.0003258643520828069,
	-0.0003304740724270414, -0.00033143912436237711, -0.00033565972949901662, -0.00033773798387982793,
	-0.00034022220962731187, -0.00033511584720157027, -0.00033869264738342701, -0.00034097330335178055,
	-0.00034504055712247583, -0.00034576536527545912, -0.00034976693918685562, -0.00035201388879673665,
	-0.00035826550046217347, -0.00035768551661411032, -0.00035990261349982315, -0.00036247296090579126,
	-0.00036871163661943764, -0.00037040458600286566, -0.00037350827114020359, -0.00037397420262271072,
	-0.00038912406010642615, -0.0003702730670895234, -0.00037381813382077677, -0.00037589700602402198,
	-0.00038120150771547737, -0.00038143651079143413, -0.0003855779669356797, -0.00038753901071268638,
	-0.00039447885399113033, -0.00039286080852304553, -0.00039620332914120829, -0.00039813727216999592,
	-0.00040316443353389538, -0.0004043816727749404, -0.00040690680276249299, -0.00040834129190997915,
	-0.00041881810585794605, -0.00041598278043726474, -0.00041870688238487721, -0.0004208591840167228,
	-0.00042554180083063877, -0.00042606973646571291, -0.0004295233485111375, -0.00043117103320583565,
	-0.00043616972141711043, -0.0004404844026308727, -0.00044318109638924658, -0.0004451016544553289,
	-0.00044331408005130531, -0.00045290502272897471, -0.00044248107231017087, -0.00043600310595809589,
	-0.00049562394410038191, -0.00046752865271115822, -0.00046872389815252256, -0.00047200667189254639,
	-0.00047702199163138925, -0.00047578746159141779, -0.00048167956203485116, -0.00048389696034145392,
	-0.0004964468706081858, -0.00049344367175956755, -0.00049732884078721644, -0.00049906168766037696,
	-0.000506017611382825, -0.00050823197938538642, -0.00050833667334679398, -0.00050869779373024105,
	-0.00053951693525286395, -0.00052904457217746838, -0.00053150581926950091, -0.00053407924742506375,
	-0.00054193131948256058, -0.00054183563481330864, -0.00054604312271891323, -0.00054712957876182074,
	-0.00056350583703366987, -0.00056398801824079524, -0.00056809001713058194, -0.00056999521366399568,
	-0.00057216002434363285, -0.00058242245704665419, -0.00056915649897837947, -0.00056454140977253795,
	-0.00064361616847791701, -0.00060275470823205042, -0.00060482283286758401, -0.00060885251798807778,
	-0.00061915367289355273, -0.00061771491925858505, -0.0006242517889488774, -0.00062586768001044726,
	-0.00065023790030278232, -0.00064392436937925899, -0.00065040302796147496, -0.00065237148065896088,
	-0.00066420403697793964, -0.00066793204936184414, -0.00066676233223526447, -0.00066355223907786599,
	-0.00071828738703264765, -0.00069660069781580613, -0.00070270120763284301, -0.00070623456735963662,
	-0.00072212398281383896, -0.00072217027095050753, -0.00072968574863360475, -0.00073061835743340171,
	-0.00076461743263692573, -0.00076011788725823166, -0.00076981981249853789, -0.00077435649675426372,
	-0.00078854783456092277, -0.00080208725102926838, -0.00079270592579712255, -0.00078066657279948152,
	-0.00054344494804070044, -0.00078233696280705805, -0.00082620426416175419, -0.00081985845984838802,
	-0.00088134994513031496, -0.00089748837195093663, -0.00089521817148199845, -0.00088999355787901973,
	-0.00094540656425634887, -0.00096453038579090162, -0.00098833300747176722, -0.00099915519044056983,
	-0.00099123636437761938, -0.0010191415945748003, -0.00092032509926953698, -0.00058227703093096522,
	-5.582501349399929e-20, -7.4536162726308065e-21, 6.9847088480357737e-21, 1.0010950094394086e-21,
	1.3360628141584885e-20, -4.8131947245533418e-23, -7.5738155271493375e-21, 2.5133821854665876e-21,
	-1.7796024280090226e-20, -1.7028874715121002e-21, 2.1543152939896077e-21, 4.6751997568835856e-20,
	2.0342973812373468e-19, -1.565934119922621e-20, -2.1425496579859189e-18, -2.0135109271133439e-18,
	1.4749096662937815e-19, 1.5454428055336277e-21, -2.5607882458358339e-20, -7.1547177827454713e-21,
	-3.0050661113031733e-20, -9.791846308537697e-21, -3.3234634791321132e-20, -1.725060223630334e-20,
	-7.8107695427372119e-21, 8.2110489528864304e-21, 1.4978523669997335e-21, 1.3564461612601079e-21,
	-7.6539976743455661e-21, 3.7699272998991924e-21, 6.4554402875398426e-21, -5.5670222980281331e-20,
	-3.3005570017560447e-20, 3.519578984203726e-20, -4.4856347227163133e-21, -5.2171168553242893e-21,
	5.1481020232505917e-20, -6.5880062490575126e-22, 2.8325961518156588e-21, -3.4241097632325111e-20,
	2.3914881385017199e-20, -6.6845726614253237e-20, -9.8796116465284648e-21, 2.5296945707104122e-20,
	-1.4147287008477909e-19, 8.9373088380639398e-21, 4.5753858915896825e-21, -1.3097155627838677e-20,
	2.1482972031702384e-19, 1.6217872710237689e-22, 5.0582146641303135e-20, -5.1036694202157899e-21,
	-2.6809930815526156e-20, 2.3348610886425197e-20, -6.3759779187605605e-21, 9.7773660746897018e-20,
	1.0149750036775682e-20, -1.1953500204039524e-21, 5.9973571292016004e-21, 4.6459678176728373e-21,
	-4.0683050548328353e-21, 1.4294685337754899e-20, -3.8786759180466277e-20, -1.0088550110464813e-19,
	4.0388585166891661e-20, -4.2491559310472769e-22, 2.1826613273505493e-20, -8.3589108165763423e-21,
	-6.8236971063906278e-21, 5.4095832587230878e-21, 5.6138765434262139e-22, 2.1759723165499348e-20,
	-2.4268292403453007e-21, 1.6378340246803834e-21, -6.0655445652245383e-21, 1.0003109155327928e-21,
	7.6500648268865691e-20, 2.6310758756608785e-20, 5.7280920403599523e-20, -2.9543278047276994e-19,
	-1.5595770182768465e-05, 4.9052343530331905e-22, -1.2431028013639724e-05, -1.3020238229281919e-05,
	-2.080987083426257e-05, -2.309366404460316e-05, -1.9887007788487934e-05, -1.9383264821277399e-05,
	-5.3418489534734126e-08, 1.3471907729853127e-20, 1.6111907238504702e-19, -4.0895471899501725e-20,
	-6.4115255189963373e-20, 1.36475440985126e-19, 2.5429733849719456e-18, 1.0874944884267155e-20,
	-1.8302937848077827e-19, 1.3926099253719597e-20, 1.5452424997766216e-21, 3.9686504583681195e-20,
	4.1431436710327401e-20, -1.8449384255847851e-21, -6.4983875446596447e-20, 3.2704069711303828e-20,
	4.0777396870827107e-20, -4.6219319072666539e-21, -1.6852501544097861e-20, -4.7125113628047979e-20,
	3.5942101594665275e-19, 1.0421219694439376e-19, -6.3933125388252339e-19, 1.0348812625075329e-17,
	3.3497087800030747e-19, 8.0690324554211493e-20, -1.9605884706177193e-19, -4.1105863843144851e-21,
	3.4963598357953081e-21, 8.9805835907296998e-21, 2.5496347576940901e-21, -1.3969990717353382e-21,
	-2.304582494857412e-21, -6.7864472553258825e-21, 3.0848789570080135e-21, -4.4081429237912648e-21,
	5.867526852453565e-21, -9.4604914406895065e-21, 4.1933698126526973e-21, 4.991806540895021e-22,
	3.8801265053672223e-22, 4.3773591900637771e-21, -1.5947902235569067e-21, 3.1569847154874154e-22,
	1.1289573884931574e-21, -1.1178042792332727e-21, -2.4301587972528255e-21, 7.8484127581119229e-22,
	-1.0652089508373874e-20, -1.0160848860733736e-20, 6.6478292486286149e-21, 1.3563193545331586e-20,
	-3.5734268113324235e-20, 6.2808882575210065e-21, 4.2731356290510346e-22, -1.5571535079531745e-20,
	-2.1550383012635426e-19, -8.9530139729201683e-20, 2.7502758052660002e-18, 8.9142512608589226e-19,
	1.1650991811792694e-20, 5.9737966160034794e-20, -8.9969021218201098e-20, -1.198983928943902e-19,
	9.227812810877089e-21, -2.9954143528470654e-21, -6.634161308399483e-21, 6.691902036148553e-22,
	8.4661198896716181e-21, 1.6193086629760239e-21, -1.2137154033419308e-20, 1.6851721465405753e-21,
	-1.1576942765371873e-20, -9.0145593582603068e-22, 8.1321245184550028e-22, 9.7370288165541815e-23,
	-4.5641688715780745e-22, -2.4231679090628449e-22, -4.7537185741265625e-22, 9.0336747297718047e-22,
	7.0116352930989481e-21, 2.4890157022597821e-22, -2.6250806957400438e-21, -5.9417382749185546e-22,
	-4.0785446367363957e-21, -2.3673166313665852e-21, 1.6140248261972908e-20, 3.5474061232127503e-20,
	-0.00045074839389834526, -0.00075776763446257602, -0.00077258602486316591, -0.00075473819826775521,
	-0.000737171187378177, -0.00078465923448380981, -0.00071163332843270262, -0.00069927470004190731,
	-0.00060722899545654046, -0.00062578639735003398, -0.00060647982813730433, -0.00060354510573370362,
	-0.0005737595224868336, -0.00055663164723285371, -0.00057837806625670146, -0.00059012248337285509,
	-0.00032696786033092629, -0.00033229636019648515, -0.00033484510447656375, -0.00032601436155861265,
	-0.00029989797674890905, -0.00029744623335065335, -0.00029434251185406327, -0.00029451325334868756,
	-0.00024126690743365804, -0.00024346598644065052, -0.00016755725769870575, -0.00019688559049317416,
	-0.00010963474481757325, -6.9488349079103767e-05, -0.00025513691734502112, -0.00041722183532748438,
	-0.00023528374493444253, -0.00027736152000014071, -0.00024539661558789608, -0.000258365726017919,
	-0.00024102625877664666, -0.00024281491427005216, -0.00024136848485930572, -0.00024700998854097485,
	-0.00024581964640112678, -0.00025317793292054203, -0.00025074060842070005, -0.00025154237491054597,
	-0.00024678071539447401, -0.00025165520248781454, -0.00024550842884045069, -0.00024733875065920509,
	-0.00025168391914444864, -0.00029934652309859052, -0.00027235604028524808, -0.00027461956813041764,
	-0.00024533844949159146, -0.0002456749892713586, -0.00024706483880768972, -0.000250618661743264,
	-0.00023570646486269469, -0.00024632490130895414, -0.00022820499679229042, -0.0002284769797799041,
	-0.00022354756513914793, -0.00017939524486234492, -8.8534484610727391e-05, -0.0002467035549656872,
	-6.8447408467714937e-05, -4.3380132562988338e-05, -6.0841865117777778e-05, -6.3350651244447633e-05,
	-7.7175903358540484e-05, -8.1007084648957066e-05, -7.8276809365183985e-05, -7.8417778902027015e-05,
	-8.7291826303403591e-05, -8.9959344877679309e-05, -9.295468239843613e-05, -9.3450306315592894e-05,
	-9.0406043165929938e-05, -9.4344188096331876e-05, -9.0866164918370783e-05, -8.8156135554687756e-05,
	-5.3205436658450151e-05, -5.3862718583008554e-05, -6.5696262257815849e-05, -6.5723396143255603e-05,
	-0.00013973378389129507, -0.00019272556484242054, -0.00011597823713538211, -1.7571653036046145e-22,
	-3.8361775326380982e-21, 4.8157357628363143e-21, 5.3737253175508297e-21, -3.2257691835845931e-21,
	-2.7011930859217193e-21, 2.4863935528046316e-22, -2.8670193532181602e-05, -2.2719663685473045e-14,
	-9.1798127778012324e-05, -9.8114212743921698e-05, -9.5826435151402081e-05, -9.5650794208156645e-05,
	-9.5011346447681065e-05, -9.6052147591964794e-05, -9.4740395730535544e-05, -9.422592853932201e-05,
	-9.9039054571665463e-05, -0.00010221171373391877, -0.00010132520865247327, -0.00010084086065594728,
	-9.7540693814832495e-05, -9.9465450013182951e-05, -9.576047707770562e-05, -9.5810197058309238e-05,
	-0.00010718012380691814, -0.00010706383045856154, -0.0001093087603575037, -0.00011023749040865944,
	-0.0001117312068993588, -0.00011142474391445462, -0.00011396063551413046, -0.00011489813103829465,
	-0.00011102526458827921, -0.00011347786313041939, -0.00011417398879216179, -0.00011559468342787041,
	-0.00010117687330912354, -0.00010134116806686699, -9.7728528648058621e-05, -0.00010330383026988829,
	-8.9056062670252135e-05, -9.9665591864680071e-05, -0.00010354827166651873, -0.00010369770266417505,
	-0.00010232620842416508, -0.00010665618765258145, -0.00010085949888612995, -9.6696808957488843e-05,
	-0.00010089961807536483, -0.00010643522299992778, -0.00010483381237388649, -0.00010337926343222739,
	-9.9422300277006898e-05, -0.00010305438639460166, -9.3429131797909882e-05, -9.2248962747333381e-05,
	-9.35577617480072e-05, -0.00010277113649022535, -9.9944078411102593e-05, -9.7371580399544872e-05,
	-9.7165085040661574e-05, -9.9014479931593718e-05, -9.3414124454631575e-05, -9.1729669728692916e-05,
	-9.2594904478022144e-05, -9.6019972331720039e-05, -9.459420451060681e-05, -9.1903402658525464e-05,
	-8.279511332543848e-05, -8.3802394466300751e-05, -7.8124569081303144e-05, -8.1635007080248877e-05,
	-6.2425046948510102e-05, -7.5206860146399783e-05, -8.1830895538276694e-05, -8.1463483413519435e-05,
	-7.5957182890695635e-05, -7.7103992847626132e-05, -7.178813858897371e-05, -6.9633718487128058e-05,
	-0.00015499483388548872, -0.00015721408012219352, -0.00018045853783391893, -0.00017725306805625322,
	-0.00016417162367757308, -0.00020366192880652686, -0.00011172621839693795, -0.00014746897559961747,
	-2.6811439548073896e-20, -8.6248394781981037e-22, 1.1783437177619388e-21, 4.3947899017186172e-22,
	-8.8603522874513987e-22, 4.9054736277590312e-22, 9.1460573517557004e-22, -2.0735817920854757e-21,
	-1.3674641736722709e-20, 4.9804026246585122e-23, 2.3675663465426291e-21, -3.2549346398146642e-22,
	-3.9932939412363642e-22, -6.9780278241882595e-23, 9.2950013580279205e-21, -1.2792477246718069e-20,
	6.2758724506518598e-21, -7.7507565338990778e-22, -1.5879417644733952e-21, -8.521071494158253e-23,
	1.8179973521989322e-21, -2.3811697588906137e-22, -2.3858288341579082e-22, -6.2425261175575637e-22,
	2.3422331708391389e-21, 3.2082339887798415e-23, 1.7302650469916768e-23, 8.0729228944030135e-23,
	-5.0900985380143802e-22, 2.1449116648834751e-22, -2.4588179076833556e-21, 9.8040245572309215e-22,
	-5.8252003459555009e-21, -3.4199518161118594e-22, -8.2706051589836292e-22, -6.64845461404424e-23,
	-1.7989640952052216e-22, -5.7372694659485972e-23, 4.4704802210467295e-21, 3.2019617781864731e-24,
	-2.2876554591193326e-21, 6.1747925707791547e-23, 4.2665088533735994e-23, -2.2732644953051606e-22,
	5.7918103186131753e-21, 2.3211888400256163e-23, 1.4408392327018496e-20, 4.0415713501119659e-22,
	2.6545723227230718e-20, -1.1637513640083772e-21, 3.9726679031469962e-21, 9.9163825793381774e-22,
	1.9336302498765856e-21, 7.0342602750187741e-24, -2.8535320984358446e-21, 2.0600680881334231e-22,
	8.9772796584117051e-22, -1.620492419294934e-23, -1.984985085958662e-23, 2.4531804637188979e-24,
	-1.6955429988784952e-21, -1.6697892855922137e-22, -8.5074631883940325e-23, -1.1445129785907894e-23,
	-3.3698692940210982e-22, -3.9620494846801536e-23, -1.3721682119202755e-21, -2.7611988077388907e-22,
	-9.2204744897857634e-23, -2.6264184691873881e-23, -2.4312413672626837e-22, -2.6386088405958191e-22,
	7.3115648028112083e-21, -1.3234902884776778e-22, -8.8485173184474747e-22, -1.4462609018300765e-22,
	-4.2339224689100398e-21, -2.5821866316061241e-22, 9.4705748571059967e-21, 9.98124082370885e-22,
	-1.2573175105465138e-20, -6.1991326846773453e-22, 1.9506361729742851e-21, 1.269725418270891e-21,
	5.2081008741053102e-22, 2.2653445284439748e-22, -2.1513262447690693e-22, -2.9457343987226534e-22,
	-4.4867811256680362e-22, 3.350495100575368e-24, 2.7864717145086661e-23, 3.8764763741276061e-23,
	7.6618718967792571e-22, 2.6533423174681261e-22, -4.243887414953204e-23, -8.7209459271368739e-23,
	5.7890964781334052e-23, -1.2170343000081136e-23, -2.636462086923982e-22, 5.6869517263209179e-24,
	6.8726887316981623e-22, -2.6716532435061862e-23, -7.5929988619360572e-23, 4.8207673411772077e-22,
	-5.0517322828024865e-21, 2.1726163548016885e-25, -1.6327119113155148e-21, 6.4456348070758148e-23,
	-6.4472631294457847e-21, 1.5786926070417093e-22, -3.1497156732704446e-21, -1.1417656118282348e-21,
	3.4774242909312916e-21, -4.3663600162742583e-22, -8.6945301763922488e-22, -1.6656257538716683e-22,
	-3.3471469767523819e-21, 1.8410680557058426e-21, 1.0688206130923251e-22, 1.2177422653481178e-22,
	1.9133045809389452e-21, 2.9792822342775164e-22, -2.9120723020167889e-22, -9.3964124125732427e-23,
	-3.9682719697444543e-23, -2.3637955339511498e-22, 2.0603213684730982e-21, 1.2348380998306895e-22,
	7.079278468980891e-22, -2.1305406649422499e-22, -4.3447681014914535e-23, -7.3392525221218618e-23,
	1.3799638876135157e-22, -2.0009653412256157e-23, 1.5821388574480941e-22, 5.3040699220240287e-23,
	2.1733058698658515e-21, 1.0507513468145204e-21, 4.2998190755910891e-21, 1.6937250024765096e-21,
	-4.5820838319005609e-21, -5.5361318976535763e-23, 3.4534896845549914e-22, -1.0769028987903122e-21,
	1.9836218512032826e-20, 9.9529128006925172e-23, -3.7727112601553754e-21, 1.5988435875357427e-22,
	-8.7756809527721425e-21, -1.0505530597884727e-22, 7.5420949267675452e-21, 1.8899643957600334e-22,
	7.5730480376924648e-22, 4.1919706108680311e-22, -4.5460879255166433e-22, -2.1429897722725971e-22,
	-9.9420467242315038e-22, 7.9677936754002737e-23, -2.9069433128320974e-21, 9.9453117737684493e-23,
	3.0591547224460228e-21, -6.3817997097904537e-22, -6.1458784470069203e-22, 2.12891526198672e-22,
	-9.6916870325156867e-22, -1.6885580422805986e-22, -2.2948325122203468e-21, -2.8458969312807095e-23,
	-1.7619005233254016e-21, 3.1184928067008034e-21, -9.1771666036455155e-21, 2.6833177415058478e-23,
	-1.4485657020983785e-20, -6.7466102480361475e-22, 3.0557019238289907e-21, -7.9098164043340169e-22,
	-1.1543781781175548e-20, 4.6123410567144326e-23, 1.2839732302405033e-21, 2.6287089160964817e-21,
	2.1581020175547641e-20, -3.1305673324869516e-21, 9.0801415679694549e-21, 9.2362578584924342e-22,
	3.1831232864967187e-21, -1.5623991682994543e-24, -3.1608174065059471e-23, 1.9435748272903568e-23,
	-5.0060245267934579e-22, -1.2935522458180333e-22, -1.7021701034667861e-21, 2.388257040601397e-22,
	7.5360942734091513e-21, 4.1301720945786079e-21, 1.672007127783129e-21, -2.6509289965362808e-22,
	2.1405838542921042e-21, -7.6491742948089234e-22, -1.3395888123641197e-21, 1.4258157175931365e-21,
	1.2707762805663618e-20, 4.9802290183794362e-21, -4.9115088528015322e-21, -2.3539376754542263e-22,
	2.5183189987183027e-20, -2.662158393771385e-21, -1.1177497818655745e-21, 1.983100780341077e-21,
	5.0767393310593687e-20, -1.0143680553117796e-21, -6.8136293863629207e-22, 7.235051132584209e-23,
	-1.4531298183397759e-21, -8.1815556993758148e-22, -7.5018181587030373e-22, -3.1968321070346801e-22,
	-9.5241503015598075e-22, 4.1211280232874491e-23, 9.1162000065470239e-23, -2.6826422690505206e-22,
	-3.3115651354036013e-22, -1.0892051093944471e-21, -1.6510736599541421e-21, 7.0378444395174108e-22,
	9.8241712062704909e-21, -1.3132873809900474e-22, 1.8967177449087906e-21, 3.8984248413745948e-22,
	2.701868019315611e-23, -1.4539076043302179e-21, 4.8064698552011354e-22, 1.7261281446047897e-21,
	7.2319885954671737e-21, 6.9997531191825272e-21, -1.5045721916168719e-21, -3.2898955605920358e-21,
	-6.667881929618071e-21, -3.5800269165973081e-21, 1.8459933434142802e-20, 5.2448186121887981e-21,
	6.9249490641982255e-21, 1.2562780059289845e-21, 6.3137037669386475e-21, -1.0327643986891582e-21,
	2.6263017947949095e-21, 2.4980971811367552e-21, 5.4578090383390391e-21, -7.3932891046221269e-23,
	5.3727655990251055e-21, -2.0550912947844483e-21, -8.7656628008575701e-23, 5.5106587662043549e-21,
	-5.3537197664382598e-21, 1.6576699527730327e-20, -7.4488338250448089e-23, 7.3412599015548484e-22,
	6.2732331589119404e-20, -9.8927047759384962e-22, -6.392390503322235e-21, 2.0754191613330528e-20,
	3.7039765692754462e-21, 5.9277998878952559e-22, 1.2210150733529153e-20, 1.7447855260735484e-20,
	-5.0558514109132819e-20, -5.3896938986203249e-21, 8.5940334562669113e-22, 1.2680054270710532e-20,
	2.5895886375777182e-20, -4.8717071911815532e-21, -4.2972050070171286e-20, 4.1717165328101492e-20,
	3.3092892531590527e-19, -3.7801714665996719e-20, 5.9097643581285416e-20, -1.9007040479596998e-20,
	2.0106387459203936e-19, -6.8055060314237615e-20, -1.5401020353788549e-19, 2.9894780000894123e-20,
	3.9973015077437988e-20, 2.2240901608126981e-21, -5.4571822372460956e-21, -2.7802392446168717e-20,
	9.8260782050088857e-20, -1.5022531998720481e-20, 8.2973496339995492e-21, 2.2895270279784087e-20,
	4.2635983624018351e-18, 5.2647020995975837e-19, 3.4842718376584055e-19, 8.0415346624159878e-17,
	1.2069454516634314e-19, -3.5148035431234142e-19, -2.7800866682777656e-09, -1.4684431281440522e-09,
	3.4127354092035504e-09, 6.9654274853265724e-09, 4.8948529261639249e-08, 1.5831360824515304e-08,
	1.6032503758048919e-08, -1.3532757535972844e-19, -2.9275534536229915e-20, 1.3406786920281575e-20,
	-3.0462791442956074e-07, -7.5428669761420937e-20, 1.9665411050343871e-06, 1.8060794209749498e-06,
	2.4413625793051719e-06, 2.1940655429352108e-06, 2.5515078963717529e-06, 2.540405710348098e-06,
	3.9295638231771148e-06, 3.1969604774525123e-06, 3.7211494820866188e-06, 3.7356911332293592e-06,
	3.9803520579442284e-06, 4.1142696191175544e-06, 3.7143644772866196e-06, 3.6415910408561116e-06,
	-2.7831527971807355e-07, 9.6281852523789233e-18, 5.6113562649737951e-21, -3.7260173634285094e-21,
	-1.8171116024619089e-22, 9.2573706983093247e-19, 6.2842517179434432e-22, 7.3069337994334581e-14,
	-2.0973999394626518e-07, -3.0013578233239645e-21, -7.8463913482822169e-22, 1.0606153902208881e-20,
	4.5827295869212706e-07, 1.1039835674217506e-06, 1.6485376449657801e-07, -6.9820209039828961e-07,
}
