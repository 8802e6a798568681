//go:build windows

package sysinfo

import (
	"strings"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

var (
	user32               = windows.NewLazySystemDLL("user32.dll")
	procGetSystemMetrics = user32.NewProc("GetSystemMetrics")
)

const (
	smCXScreen = 0
	smCYScreen = 1
)

// hostModel reads the manufacturer and model recorded by the firmware.
func hostModel() string {
	const (
		sysInfo = `SYSTEM\CurrentControlSet\Control\SystemInformation`
		bios    = `HARDWARE\DESCRIPTION\System\BIOS`
	)
	manufacturer := registryString(registry.LOCAL_MACHINE, sysInfo, "SystemManufacturer")
	model := registryString(registry.LOCAL_MACHINE, sysInfo, "SystemProductName")
	if manufacturer == "" {
		manufacturer = registryString(registry.LOCAL_MACHINE, bios, "SystemManufacturer")
	}
	if model == "" {
		model = registryString(registry.LOCAL_MACHINE, bios, "SystemProductName")
	}

	var parts []string
	for _, v := range []string{manufacturer, model} {
		if v = strings.TrimSpace(v); v != "" && !isPlaceholder(v) {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " ")
}

// gpuName enumerates the display adapter class keys and returns the first
// real driver description.
func gpuName() string {
	const classKey = `SYSTEM\CurrentControlSet\Control\Class\{4d36e968-e325-11ce-bfc1-08002be10318}`

	for _, sub := range subKeys(registry.LOCAL_MACHINE, classKey) {
		path := classKey + `\` + sub
		for _, value := range []string{"DriverDesc", "Device Description", "HardwareInformation.AdapterString"} {
			if gpu := registryString(registry.LOCAL_MACHINE, path, value); usableGPU(gpu) {
				return strings.TrimSpace(gpu)
			}
		}
	}

	const videoKey = `SYSTEM\CurrentControlSet\Control\Video`
	for _, sub := range subKeys(registry.LOCAL_MACHINE, videoKey) {
		if strings.EqualFold(sub, "Mappings") {
			continue
		}
		if gpu := registryString(registry.LOCAL_MACHINE, videoKey+`\`+sub+`\0000`, "DriverDesc"); usableGPU(gpu) {
			return strings.TrimSpace(gpu)
		}
	}
	return ""
}

func screenResolution() (int64, int64) {
	w, _, _ := procGetSystemMetrics.Call(uintptr(smCXScreen))
	h, _, _ := procGetSystemMetrics.Call(uintptr(smCYScreen))
	if w == 0 || h == 0 {
		return 0, 0
	}
	return int64(w), int64(h)
}

// installedPrograms counts the entries of both uninstall registry views.
func installedPrograms() (int64, bool) {
	var n int64
	found := false
	for _, path := range []string{
		`SOFTWARE\Microsoft\Windows\CurrentVersion\Uninstall`,
		`SOFTWARE\WOW6432Node\Microsoft\Windows\CurrentVersion\Uninstall`,
	} {
		keys := subKeys(registry.LOCAL_MACHINE, path)
		if keys != nil {
			found = true
		}
		n += int64(len(keys))
	}
	return n, found
}

func subKeys(root registry.Key, path string) []string {
	k, err := registry.OpenKey(root, path, registry.ENUMERATE_SUB_KEYS)
	if err != nil {
		return nil
	}
	defer func() { _ = k.Close() }()

	names, err := k.ReadSubKeyNames(-1)
	if err != nil {
		return nil
	}
	return names
}

// registryString reads a string value, returning "" on any failure.
func registryString(root registry.Key, path, name string) string {
	k, err := registry.OpenKey(root, path, registry.QUERY_VALUE)
	if err != nil {
		return ""
	}
	defer func() { _ = k.Close() }()

	value, _, err := k.GetStringValue(name)
	if err != nil {
		return ""
	}
	return value
}
