// led_gamma.go - Brightness expansion for physical LED outputs

package main

// piglowGamma expands the 4-bit animation brightness to the 8-bit PWM
// range on a perceptual curve; linear PWM makes the low steps of fades
// indistinguishable. Shared by the PiGlow and WS2812 outputs.
var piglowGamma = [MaxBrightness + 1]byte{
	0, 1, 2, 4, 6, 10, 15, 21, 30, 42, 58, 80, 110, 151, 198, 255,
}
