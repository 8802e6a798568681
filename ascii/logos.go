// Package ascii holds the built-in art printed next to the info panel.
// Logos are keyed by distribution short name and coloured with ANSI escape
// sequences.
package ascii

import (
	"sort"

	"freshfetch/sysinfo"
)

var logos = map[string]func() []string{
	"arch":            archLogo,
	"bsd":             bsdLogo,
	"debian":          debianLogo,
	"fedora":          fedoraLogo,
	"linux":           tuxLogo,
	"macos":           macLogo,
	"ubuntu":          ubuntuLogo,
	"windows":         windowsClientLogo,
	"windows-compact": windowsCompactLogo,
	"windows-server":  windowsServerLogo,
}

// kernelLogos maps a kernel family to the logo used when the distribution
// has no art of its own.
var kernelLogos = map[string]string{
	sysinfo.KernelLinux:   "linux",
	sysinfo.KernelBSD:     "bsd",
	sysinfo.KernelMacOS:   "macos",
	sysinfo.KernelWindows: "windows",
}

// Lookup returns the named logo, one string per line.
func Lookup(name string) ([]string, bool) {
	logo, ok := logos[name]
	if !ok {
		return nil, false
	}
	return logo(), true
}

// ForDistro picks the logo for a distribution, falling back to the kernel
// family logo and finally to Tux.
func ForDistro(shortName, kernel string) []string {
	if logo, ok := Lookup(shortName); ok {
		return logo
	}
	if logo, ok := Lookup(kernelLogos[kernel]); ok {
		return logo
	}
	return tuxLogo()
}

// Names lists every built-in logo name in sorted order.
func Names() []string {
	names := make([]string, 0, len(logos))
	for name := range logos {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func tuxLogo() []string {
	w := sysinfo.ColorWhite
	y := sysinfo.ColorYellow
	r := sysinfo.ColorReset

	return []string{
		w + "        #####" + r,
		w + "       #######" + r,
		w + "       ##" + r + "O" + w + "#" + r + "O" + w + "##" + r,
		w + "       #" + y + "#####" + w + "#" + r,
		w + "     ##" + r + "##" + y + "###" + r + "##" + w + "##" + r,
		w + "    #" + r + "##########" + w + "##" + r,
		w + "   #" + r + "############" + w + "##" + r,
		w + "   #" + r + "############" + w + "###" + r,
		y + "  ##" + w + "#" + r + "###########" + w + "##" + y + "#" + r,
		y + "######" + w + "#" + r + "#######" + w + "#" + y + "######" + r,
		y + "#######" + w + "#" + r + "#####" + w + "#" + y + "#######" + r,
		y + "  #####" + w + "#######" + y + "#####" + r,
	}
}

func archLogo() []string {
	c := sysinfo.ColorCyan
	r := sysinfo.ColorReset

	return []string{
		c + "                   -`" + r,
		c + "                  .o+`" + r,
		c + "                 `ooo/" + r,
		c + "                `+oooo:" + r,
		c + "               `+oooooo:" + r,
		c + "               -+oooooo+:" + r,
		c + "             `/:-:++oooo+:" + r,
		c + "            `/++++/+++++++:" + r,
		c + "           `/++++++++++++++:" + r,
		c + "          `/+++ooooooooooooo/`" + r,
		c + "         ./ooosssso++osssssso+`" + r,
		c + "        .oossssso-````/ossssss+`" + r,
		c + "       -osssssso.      :ssssssso." + r,
		c + "      :osssssss/        osssso+++." + r,
		c + "     /ossssssss/        +ssssooo/-" + r,
		c + "   `/ossssso+/:-        -:/+osssso+-" + r,
		c + "  `+sso+:-`                 `.-/+oso:" + r,
		c + " `++:.                           `-/+/" + r,
		c + " .`                                 `/" + r,
	}
}

func bsdLogo() []string {
	red := sysinfo.ColorRed
	r := sysinfo.ColorReset

	return []string{
		red + "```                        `" + r,
		red + "  ` `.....---.......--.```   -/" + r,
		red + "  +o   .--`         /y:`      +." + r,
		red + "   yo`:.            :o      `+-" + r,
		red + "    y/               -/`   -o/" + r,
		red + "   .-                  ::/sy+:." + r,
		red + "   /                     `--  /" + r,
		red + "  `:                          :`" + r,
		red + "  `:                          :`" + r,
		red + "   /                          /" + r,
		red + "   .-                        -." + r,
		red + "    --                      -." + r,
		red + "     `:`                  `:`" + r,
		red + "       .--             `--." + r,
		red + "          .---.....----." + r,
	}
}

func debianLogo() []string {
	red := sysinfo.ColorRed
	r := sysinfo.ColorReset

	return []string{
		red + "       _,met$$$$$gg." + r,
		red + "    ,g$$$$$$$$$$$$$$$P." + r,
		red + "  ,g$$P\"        \"\"\"Y$$.\"." + r,
		red + " ,$$P'              `$$$." + r,
		red + "',$$P       ,ggs.     `$$b:" + r,
		red + "`d$$'     ,$P\"'   .    $$$" + r,
		red + " $$P      d$'     ,    $$P" + r,
		red + " $$:      $$.   -    ,d$$'" + r,
		red + " $$;      Y$b._   _,d$P'" + r,
		red + " Y$$.    `.`\"Y$$$$P\"'" + r,
		red + " `$$b      \"-.__" + r,
		red + "  `Y$$" + r,
		red + "   `Y$$." + r,
		red + "     `$$b." + r,
		red + "       `Y$$b." + r,
		red + "          `\"Y$b._" + r,
		red + "              `\"\"\"" + r,
	}
}

func fedoraLogo() []string {
	b := sysinfo.ColorBlue
	w := sysinfo.ColorWhite
	r := sysinfo.ColorReset

	return []string{
		b + "          /:-------------:\\" + r,
		b + "       :-------------------::" + r,
		b + "     :-----------" + w + "/shhOHbmp" + b + "---:\\" + r,
		b + "   /-----------" + w + "omMMMNNNMMD" + b + "  ---:" + r,
		b + "  :-----------" + w + "sMMMMNMNMP" + b + ".    ---:" + r,
		b + " :-----------" + w + ":MMMdP" + b + "-------    ---\\" + r,
		b + ",------------" + w + ":MMMd" + b + "--------    ---:" + r,
		b + ":------------" + w + ":MMMd" + b + "-------    .---:" + r,
		b + ":----    " + w + "oNMMMMMMMMMNho" + b + "     .----:" + r,
		b + ":--     .+" + w + "shhhMMMmhhy++" + b + "   .------/" + r,
		b + ":-    -------" + w + ":MMMd" + b + "--------------:" + r,
		b + ":-   --------" + w + "/MMMd" + b + "-------------;" + r,
		b + ":-    ------" + w + "/hMMMy" + b + "------------:" + r,
		b + ":-- " + w + ":dMNdhhdNMMNo" + b + "------------;" + r,
		b + ":---" + w + ":sdNMMMMNds:" + b + "------------:" + r,
		b + ":------" + w + ":://:" + b + "-------------::" + r,
		b + ":---------------------://" + r,
	}
}

func ubuntuLogo() []string {
	o := sysinfo.ColorRed
	w := sysinfo.ColorWhite
	r := sysinfo.ColorReset

	return []string{
		o + "            .-/+oossssoo+/-." + r,
		o + "        `:+ssssssssssssssssss+:`" + r,
		o + "      -+ssssssssssssssssssyyssss+-" + r,
		o + "    .ossssssssssssssssss" + w + "dMMMNy" + o + "sssso." + r,
		o + "   /sssssssssss" + w + "hdmmNNmmyNMMMMh" + o + "ssssss/" + r,
		o + "  +sssssssss" + w + "hmydMMMMMMMNddddy" + o + "ssssssss+" + r,
		o + " /ssssssss" + w + "hNMMMyhhyyyyhmNMMMNh" + o + "ssssssss/" + r,
		o + ".ssssssss" + w + "dMMMNh" + o + "ssssssssss" + w + "hNMMMd" + o + "ssssssss." + r,
		o + "+sss" + w + "hhhyNMMNy" + o + "ssssssssssss" + w + "yNMMMy" + o + "sssssss+" + r,
		o + "oss" + w + "yNMMMNyMMh" + o + "ssssssssssssss" + w + "hmmmh" + o + "ssssssso" + r,
		o + "oss" + w + "yNMMMNyMMh" + o + "sssssssssssssshmmmh" + o + "ssssssso" + r,
		o + "+sss" + w + "hhhyNMMNy" + o + "ssssssssssss" + w + "yNMMMy" + o + "sssssss+" + r,
		o + ".ssssssss" + w + "dMMMNh" + o + "ssssssssss" + w + "hNMMMd" + o + "ssssssss." + r,
		o + " /ssssssss" + w + "hNMMMyhhyyyyhdNMMMNh" + o + "ssssssss/" + r,
		o + "  +sssssssss" + w + "dmydMMMMMMMMddddy" + o + "ssssssss+" + r,
		o + "   /sssssssssss" + w + "hdmNNNNmyNMMMMh" + o + "ssssss/" + r,
		o + "    .ossssssssssssssssss" + w + "dMMMNy" + o + "sssso." + r,
		o + "      -+sssssssssssssssss" + w + "yyy" + o + "ssss+-" + r,
		o + "        `:+ssssssssssssssssss+:`" + r,
		o + "            .-/+oossssoo+/-." + r,
	}
}

func macLogo() []string {
	g := sysinfo.ColorGreen
	y := sysinfo.ColorYellow
	red := sysinfo.ColorRed
	p := sysinfo.ColorPurple
	b := sysinfo.ColorBlue
	r := sysinfo.ColorReset

	return []string{
		g + "                    'c." + r,
		g + "                 ,xNMM." + r,
		g + "               .OMMMMo" + r,
		g + "               OMMM0," + r,
		g + "     .;loddo:' loolloddol;." + r,
		g + "   cKMMMMMMMMMMNWMMMMMMMMMM0:" + r,
		y + " .KMMMMMMMMMMMMMMMMMMMMMMMWd." + r,
		y + " XMMMMMMMMMMMMMMMMMMMMMMMX." + r,
		red + ";MMMMMMMMMMMMMMMMMMMMMMMM:" + r,
		red + ":MMMMMMMMMMMMMMMMMMMMMMMM:" + r,
		red + ".MMMMMMMMMMMMMMMMMMMMMMMMX." + r,
		p + " kMMMMMMMMMMMMMMMMMMMMMMMMWd." + r,
		p + " .XMMMMMMMMMMMMMMMMMMMMMMMMMMk" + r,
		b + "  .XMMMMMMMMMMMMMMMMMMMMMMMMK." + r,
		b + "    kMMMMMMMMMMMMMMMMMMMMMMd" + r,
		b + "     ;KMMMMMMMWXXWMMMMMMMk." + r,
		b + "       .cooc,.    .,coo:." + r,
	}
}

// windowsClientLogo is the four-pane Windows 10/11 flag.
func windowsClientLogo() []string {
	c := sysinfo.ColorCyan
	r := sysinfo.ColorReset

	return []string{
		c + "                               ..,," + r,
		c + "                    ....,,:;+ccllll" + r,
		c + "      ...,,+:;  cllllllllllllllllll" + r,
		c + ",cclllllllllll  lllllllllllllllllll" + r,
		c + "llllllllllllll  lllllllllllllllllll" + r,
		c + "llllllllllllll  lllllllllllllllllll" + r,
		c + "llllllllllllll  lllllllllllllllllll" + r,
		c + "llllllllllllll  lllllllllllllllllll" + r,
		c + "llllllllllllll  lllllllllllllllllll" + r,
		c + "" + r,
		c + "llllllllllllll  lllllllllllllllllll" + r,
		c + "llllllllllllll  lllllllllllllllllll" + r,
		c + "llllllllllllll  lllllllllllllllllll" + r,
		c + "llllllllllllll  lllllllllllllllllll" + r,
		c + "llllllllllllll  lllllllllllllllllll" + r,
		c + "llllllllllllll  lllllllllllllllllll" + r,
		c + "llllllllllllll  lllllllllllllllllll" + r,
		c + "`'ccllllllllll  lllllllllllllllllll" + r,
	}
}

// windowsServerLogo keeps the classic waving flag, in blue to set server
// installations apart.
func windowsServerLogo() []string {
	c := sysinfo.ColorBlue
	r := sysinfo.ColorReset

	return []string{
		c + "        ,.=:!!t3Z3z.," + r,
		c + "       :tt:::tt333EE3" + r,
		c + "       Et:::ztt33EEEL" + r + " @Ee.,      ..,",
		c + "      ;tt:::tt333EE7" + r + " ;EEEEEEttttt33#",
		c + "     :Et:::zt333EEQ." + r + " $EEEEEttttt33QL",
		c + "     it::::tt333EEF" + r + " @EEEEEEttttt33F",
		c + "    ;3=*^```\"*4EEV" + r + " :EEEEEEttttt33@.",
		c + "    ,.=::::!t=., " + r + "`" + c + " @EEEEEEtttz33QF",
		c + "   ;::::::::zt33)" + r + "   \"4EEEtttji3P*",
		c + "  :t::::::::tt33." + r + ":Z3z..  `` ,..g.",
		c + "  i::::::::zt33F" + r + " AEEEtttt::::ztF",
		c + " ;:::::::::t33V" + r + " ;EEEttttt::::t3",
		c + " E::::::::zt33L" + r + " @EEEtttt::::z3F",
		c + "{3=*^```\"*4E3)" + r + " ;EEEtttt:::::tZ`",
		c + "             `" + r + " :EEEEtttt::::z7",
		c + "                 \"VEzjt:;;z>*`" + r,
	}
}

func windowsCompactLogo() []string {
	r := sysinfo.ColorRed
	g := sysinfo.ColorGreen
	reset := sysinfo.ColorReset

	return []string{
		r + "################  ################" + reset,
		r + "################  ################" + reset,
		r + "################  ################" + reset,
		r + "################  ################" + reset,
		r + "################  ################" + reset,
		"",
		g + "################  ################" + reset,
		g + "################  ################" + reset,
		g + "################  ################" + reset,
		g + "################  ################" + reset,
	}
}
